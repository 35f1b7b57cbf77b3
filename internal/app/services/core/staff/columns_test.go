package staff

import (
	"testing"

	"clinic-dashboard-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestInferColumns(t *testing.T) {
	t.Run("Every entity has domain", func(t *testing.T) {
		entities := []models.Entity{
			{ID: "1", Name: "Ann", Domain: strPtr("Cardiology")},
			{ID: "2", Name: "Bob", Domain: strPtr("Pediatrics")},
		}

		assert.Equal(t, []string{ColumnName, ColumnEmail, ColumnDomain}, InferColumns(entities))
	})

	t.Run("One entity without domain hides the column", func(t *testing.T) {
		entities := []models.Entity{
			{ID: "1", Name: "Ann", Domain: strPtr("Cardiology")},
			{ID: "2", Name: "Bob", Domain: strPtr("Pediatrics")},
		}
		assert.Contains(t, InferColumns(entities), ColumnDomain)

		entities = append(entities, models.Entity{ID: "3", Name: "Cid"})
		assert.NotContains(t, InferColumns(entities), ColumnDomain, "a single missing value should suppress the column for all rows")
	})

	t.Run("Room number column", func(t *testing.T) {
		entities := []models.Entity{
			{ID: "1", RoomNumber: strPtr("101")},
			{ID: "2", RoomNumber: strPtr("102")},
		}

		columns := InferColumns(entities)
		assert.Contains(t, columns, ColumnRoomNumber)
		assert.NotContains(t, columns, ColumnDomain)
	})

	t.Run("Empty string counts as defined", func(t *testing.T) {
		entities := []models.Entity{{ID: "1", Domain: strPtr("")}}

		assert.Contains(t, InferColumns(entities), ColumnDomain)
	})

	t.Run("Empty collection keeps every column", func(t *testing.T) {
		assert.Equal(t, []string{ColumnName, ColumnEmail, ColumnDomain, ColumnRoomNumber}, InferColumns(nil))
	})
}
