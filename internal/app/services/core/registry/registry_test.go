package registry

import (
	"context"
	"testing"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOperations struct{}

func (stubOperations) Fetch(context.Context, string) ([]models.Entity, error) { return nil, nil }
func (stubOperations) Add(context.Context, string, models.Entity) (*models.Entity, error) {
	return nil, nil
}
func (stubOperations) Update(context.Context, string, string, models.Entity) (*models.Entity, error) {
	return nil, nil
}
func (stubOperations) Delete(context.Context, string, string) error { return nil }

func allDescriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, 4)
	for _, role := range contracts.AllRoles() {
		descriptors = append(descriptors, Descriptor{Role: role, Operations: stubOperations{}})
	}
	return descriptors
}

func TestNewRegistry(t *testing.T) {
	t.Run("Resolves every role", func(t *testing.T) {
		registry, err := NewRegistry(allDescriptors()...)
		require.NoError(t, err)

		provider, err := registry.Resolve(contracts.RoleProvider)
		require.NoError(t, err)
		assert.Equal(t, "Provider", provider.Label())
		assert.Equal(t, "doctor", provider.TypeTag())
		assert.Equal(t, "doctors", provider.ResourcePath)
		assert.Equal(t, contracts.FieldDomain, provider.RoleField())

		staff := registry.MustResolve(contracts.RoleStaff)
		assert.Equal(t, contracts.FieldRoomNumber, staff.RoleField())

		assert.Equal(t, contracts.AllRoles(), registry.Roles())
	})

	t.Run("Rejects duplicate roles", func(t *testing.T) {
		descriptors := append(allDescriptors(), Descriptor{Role: contracts.RoleAdmin, Operations: stubOperations{}})

		_, err := NewRegistry(descriptors...)
		assert.Error(t, err)
	})

	t.Run("Rejects missing operations", func(t *testing.T) {
		_, err := NewRegistry(Descriptor{Role: contracts.RoleAdmin})
		assert.Error(t, err)
	})

	t.Run("Rejects unknown roles", func(t *testing.T) {
		_, err := NewRegistry(Descriptor{Role: contracts.Role(42), Operations: stubOperations{}})
		assert.Error(t, err)
	})

	t.Run("Unknown lookup is an error", func(t *testing.T) {
		registry, err := NewRegistry(Descriptor{Role: contracts.RoleAdmin, Operations: stubOperations{}})
		require.NoError(t, err)

		_, err = registry.Resolve(contracts.RoleProvider)
		assert.Error(t, err)
		assert.Panics(t, func() { registry.MustResolve(contracts.RoleProvider) })
	})
}

func TestMustNewRegistry(t *testing.T) {
	assert.NotPanics(t, func() { MustNewRegistry(allDescriptors()...) })
	assert.Panics(t, func() { MustNewRegistry(allDescriptors()[:3]...) }, "an incomplete table should fail at startup")
}
