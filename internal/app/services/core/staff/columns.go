package staff

import "clinic-dashboard-service/internal/app/models"

const (
	ColumnName       = "name"
	ColumnEmail      = "email"
	ColumnDomain     = "domain"
	ColumnRoomNumber = "room_number"
)

// InferColumns derives the table columns from the whole collection. An optional
// column is shown only when every entity carries the field, so one row without
// it hides the column for all rows. Empty collections keep every column.
func InferColumns(entities []models.Entity) []string {
	allHaveDomain := true
	allHaveRoomNumber := true

	for _, entity := range entities {
		if entity.Domain == nil {
			allHaveDomain = false
		}
		if entity.RoomNumber == nil {
			allHaveRoomNumber = false
		}
	}

	columns := []string{ColumnName, ColumnEmail}
	if allHaveDomain {
		columns = append(columns, ColumnDomain)
	}
	if allHaveRoomNumber {
		columns = append(columns, ColumnRoomNumber)
	}
	return columns
}
