package staff

import (
	"context"
	"errors"
	"testing"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/core/registry"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type listFixture struct {
	controller *ListController
	ops        map[contracts.Role]*MockEntityOperations
	identity   *MockIdentityProvider
	toasts     *toastRecorder
}

func newListFixture(t *testing.T) *listFixture {
	t.Helper()

	fixture := &listFixture{
		ops:      map[contracts.Role]*MockEntityOperations{},
		identity: new(MockIdentityProvider),
		toasts:   &toastRecorder{},
	}

	descriptors := make([]registry.Descriptor, 0, len(contracts.AllRoles()))
	for _, role := range contracts.AllRoles() {
		ops := new(MockEntityOperations)
		fixture.ops[role] = ops
		descriptors = append(descriptors, registry.Descriptor{
			Role:               role,
			RequiresCredential: true,
			Operations:         ops,
		})
	}

	entityRegistry, err := registry.NewRegistry(descriptors...)
	require.NoError(t, err)

	fixture.controller = NewListController(zap.NewNop(), entityRegistry, fixture.identity, fixture.toasts.notify)
	return fixture
}

func providerRows() []models.Entity {
	return []models.Entity{
		{ID: "d-1", Name: "Ann", Email: "ann@clinic.test", Domain: strPtr("Cardiology")},
		{ID: "d-2", Name: "Bob", Email: "bob@clinic.test", Domain: strPtr("Pediatrics")},
		{ID: "d-3", Name: "Cid", Email: "cid@clinic.test", Domain: strPtr("Oncology")},
	}
}

func (f *listFixture) selectProviders(t *testing.T) {
	t.Helper()
	f.ops[contracts.RoleProvider].On("Fetch", mock.Anything, "clinic-1").Return(providerRows(), nil).Once()
	require.NoError(t, f.controller.Select(context.Background(), "clinic-1", contracts.RoleProvider))
}

func TestListController_Select(t *testing.T) {
	t.Run("Starts idle", func(t *testing.T) {
		fixture := newListFixture(t)

		snapshot := fixture.controller.Snapshot()
		assert.Equal(t, ListStateIdle, snapshot.State)
		assert.Empty(t, snapshot.Rows)
	})

	t.Run("Success replaces the collection", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		snapshot := fixture.controller.Snapshot()
		assert.Equal(t, ListStateReady, snapshot.State)
		assert.Equal(t, providerRows(), snapshot.Rows)
		assert.Equal(t, contracts.RoleProvider, snapshot.Role)
		assert.True(t, fixture.controller.Selected("clinic-1", contracts.RoleProvider))
		assert.False(t, fixture.controller.Selected("clinic-2", contracts.RoleProvider))
	})

	t.Run("Failure keeps the previous collection", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fetchErr := exceptions.ErrRemoteStatus(constvars.MethodGet, "http://backend/doctors", 500)
		fixture.ops[contracts.RoleProvider].On("Fetch", mock.Anything, "clinic-1").Return(nil, fetchErr).Once()

		err := fixture.controller.Select(context.Background(), "clinic-1", contracts.RoleProvider)
		assert.Error(t, err)

		snapshot := fixture.controller.Snapshot()
		assert.Equal(t, ListStateError, snapshot.State)
		assert.Equal(t, providerRows(), snapshot.Rows, "rows should be retained after a failed fetch")
		assert.Equal(t, models.NotificationError, fixture.toasts.last().Level)
		assert.Equal(t, constvars.ErrClientRemoteCallFailed, fixture.toasts.last().Message)
	})
}

func TestListController_StaleFetchIsIgnored(t *testing.T) {
	fixture := newListFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	staleRows := []models.Entity{{ID: "old", Name: "Stale"}}
	freshRows := []models.Entity{{ID: "n-1", Name: "Nia", RoomNumber: strPtr("12")}}

	fixture.ops[contracts.RoleProvider].On("Fetch", mock.Anything, "clinic-1").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(staleRows, nil).Once()
	fixture.ops[contracts.RoleStaff].On("Fetch", mock.Anything, "clinic-1").Return(freshRows, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- fixture.controller.Select(context.Background(), "clinic-1", contracts.RoleProvider)
	}()

	<-started
	require.NoError(t, fixture.controller.Select(context.Background(), "clinic-1", contracts.RoleStaff))
	close(release)
	require.NoError(t, <-done)

	snapshot := fixture.controller.Snapshot()
	assert.Equal(t, ListStateReady, snapshot.State)
	assert.Equal(t, contracts.RoleStaff, snapshot.Role)
	assert.Equal(t, freshRows, snapshot.Rows)
}

func TestListController_FailedSwitchBlocksMutations(t *testing.T) {
	fixture := newListFixture(t)
	fixture.selectProviders(t)

	fetchErr := exceptions.ErrRemoteStatus(constvars.MethodGet, "http://backend/nurses", 503)
	fixture.ops[contracts.RoleStaff].On("Fetch", mock.Anything, "clinic-1").Return(nil, fetchErr).Once()
	require.Error(t, fixture.controller.Select(context.Background(), "clinic-1", contracts.RoleStaff))

	snapshot := fixture.controller.Snapshot()
	assert.Equal(t, ListStateError, snapshot.State)
	assert.Equal(t, contracts.RoleStaff, snapshot.Role)
	assert.Equal(t, providerRows(), snapshot.Rows, "provider rows stay visible")
	assert.Equal(t, contracts.RoleProvider, snapshot.RowsRole)
	assert.Equal(t, "clinic-1", snapshot.RowsClinicID)
	assert.False(t, fixture.controller.Loaded("clinic-1", contracts.RoleStaff))

	_, found := fixture.controller.Find("d-2")
	assert.False(t, found, "rows of another role must not be addressable")

	assertNotLoaded := func(t *testing.T, err error) {
		t.Helper()
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSelectionNotLoaded, customErr.ClientMessage)
	}

	assertNotLoaded(t, fixture.controller.Delete(context.Background(), "d-2"))

	_, err := fixture.controller.Update(context.Background(), "d-2", map[string]string{contracts.FieldName: "Bo"})
	assertNotLoaded(t, err)

	_, err = fixture.controller.Create(context.Background(), map[string]string{
		contracts.FieldName:     "Nia",
		contracts.FieldEmail:    "nia@clinic.test",
		contracts.FieldPassword: "secret-pass",
	})
	assertNotLoaded(t, err)

	fixture.ops[contracts.RoleStaff].AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	fixture.ops[contracts.RoleStaff].AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fixture.ops[contracts.RoleStaff].AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	fixture.identity.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything, mock.Anything)

	t.Run("A successful refetch unlocks the new role", func(t *testing.T) {
		nurses := []models.Entity{{ID: "n-1", Name: "Nia", RoomNumber: strPtr("12")}}
		fixture.ops[contracts.RoleStaff].On("Fetch", mock.Anything, "clinic-1").Return(nurses, nil).Once()
		fixture.ops[contracts.RoleStaff].On("Delete", mock.Anything, "clinic-1", "n-1").Return(nil).Once()

		require.NoError(t, fixture.controller.Select(context.Background(), "clinic-1", contracts.RoleStaff))
		assert.True(t, fixture.controller.Loaded("clinic-1", contracts.RoleStaff))
		require.NoError(t, fixture.controller.Delete(context.Background(), "n-1"))
		assert.Empty(t, fixture.controller.Snapshot().Rows)
	})
}

func TestListController_Create(t *testing.T) {
	values := map[string]string{
		contracts.FieldName:     "Dana",
		contracts.FieldEmail:    "dana@clinic.test",
		contracts.FieldPassword: "secret123",
		contracts.FieldDomain:   "Neurology",
	}

	t.Run("Credential failure never calls add", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		authErr := exceptions.ErrIdentityProvider(&exceptions.AuthError{
			Code:    constvars.AuthCodeEmailAlreadyInUse,
			Message: "The email address is already in use by another account.",
		}, "signUp")
		fixture.identity.On("CreateCredential", mock.Anything, "dana@clinic.test", "secret123").Return(nil, authErr).Once()

		created, err := fixture.controller.Create(context.Background(), values)
		assert.Nil(t, created)
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

		fixture.ops[contracts.RoleProvider].AssertNumberOfCalls(t, "Add", 0)
		assert.Equal(t, providerRows(), fixture.controller.Snapshot().Rows)
		assert.Equal(t, models.NotificationError, fixture.toasts.last().Level)
	})

	t.Run("Appends the created entity with the credential id", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fixture.identity.On("CreateCredential", mock.Anything, "dana@clinic.test", "secret123").
			Return(&models.Identity{ID: "uid-9", Email: "dana@clinic.test"}, nil).Once()
		fixture.ops[contracts.RoleProvider].On("Add", mock.Anything, "clinic-1", models.Entity{
			ID:     "uid-9",
			Name:   "Dana",
			Email:  "dana@clinic.test",
			Domain: strPtr("Neurology"),
		}).Return(&models.Entity{Name: "Dana", Email: "dana@clinic.test", Domain: strPtr("Neurology")}, nil).Once()

		created, err := fixture.controller.Create(context.Background(), values)
		require.NoError(t, err)
		assert.Equal(t, "uid-9", created.ID)

		rows := fixture.controller.Snapshot().Rows
		require.Len(t, rows, 4)
		assert.Equal(t, "uid-9", rows[3].ID)
		assert.Equal(t, models.NotificationSuccess, fixture.toasts.last().Level)
		assert.Equal(t, "Provider added successfully", fixture.toasts.last().Message)
	})

	t.Run("Add failure leaves the collection unchanged", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fixture.identity.On("CreateCredential", mock.Anything, mock.Anything, mock.Anything).
			Return(&models.Identity{ID: "uid-9"}, nil).Once()
		fixture.ops[contracts.RoleProvider].On("Add", mock.Anything, "clinic-1", mock.AnythingOfType("models.Entity")).
			Return(nil, exceptions.ErrRemoteStatus(constvars.MethodPost, "http://backend/doctors", 500)).Once()

		_, err := fixture.controller.Create(context.Background(), values)
		assert.Error(t, err)
		assert.Equal(t, providerRows(), fixture.controller.Snapshot().Rows)
	})

	t.Run("No role selected", func(t *testing.T) {
		fixture := newListFixture(t)

		_, err := fixture.controller.Create(context.Background(), values)
		assert.Error(t, err)
		fixture.identity.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListController_Update(t *testing.T) {
	t.Run("Merges the response over the prior record only", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)
		before := fixture.controller.Snapshot().Rows

		fixture.ops[contracts.RoleProvider].On("Update", mock.Anything, "clinic-1", "d-2", mock.AnythingOfType("models.Entity")).
			Return(&models.Entity{ID: "d-2", Name: "Bobby"}, nil).Once()

		updated, err := fixture.controller.Update(context.Background(), "d-2", map[string]string{
			contracts.FieldName:   "Bobby",
			contracts.FieldDomain: "Pediatrics",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bobby", updated.Name)

		after := fixture.controller.Snapshot().Rows
		require.Len(t, after, 3)
		assert.Equal(t, before[0], after[0])
		assert.Equal(t, before[2], after[2])
		assert.Equal(t, "Bobby", after[1].Name)
		assert.Equal(t, "bob@clinic.test", after[1].Email, "fields missing from the response keep their prior value")
		assert.Equal(t, "Pediatrics", *after[1].Domain)
	})

	t.Run("Failure leaves the collection unchanged", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fixture.ops[contracts.RoleProvider].On("Update", mock.Anything, "clinic-1", "d-1", mock.AnythingOfType("models.Entity")).
			Return(nil, errors.New("connection refused")).Once()

		_, err := fixture.controller.Update(context.Background(), "d-1", map[string]string{contracts.FieldName: "X"})
		assert.Error(t, err)
		assert.Equal(t, providerRows(), fixture.controller.Snapshot().Rows)
		assert.Equal(t, "connection refused", fixture.toasts.last().Message)
	})

	t.Run("Unknown entity", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		_, err := fixture.controller.Update(context.Background(), "missing", map[string]string{contracts.FieldName: "X"})
		assert.Error(t, err)
		fixture.ops[contracts.RoleProvider].AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListController_Delete(t *testing.T) {
	t.Run("Removes exactly the deleted id", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fixture.ops[contracts.RoleProvider].On("Delete", mock.Anything, "clinic-1", "d-2").Return(nil).Once()

		require.NoError(t, fixture.controller.Delete(context.Background(), "d-2"))

		rows := fixture.controller.Snapshot().Rows
		assert.Equal(t, []models.Entity{providerRows()[0], providerRows()[2]}, rows)
		assert.Equal(t, "Provider deleted successfully", fixture.toasts.last().Message)
	})

	t.Run("Failure leaves the collection unchanged", func(t *testing.T) {
		fixture := newListFixture(t)
		fixture.selectProviders(t)

		fixture.ops[contracts.RoleProvider].On("Delete", mock.Anything, "clinic-1", "d-2").
			Return(exceptions.ErrRemoteStatus(constvars.MethodDelete, "http://backend/doctors/d-2", 500)).Once()

		assert.Error(t, fixture.controller.Delete(context.Background(), "d-2"))
		assert.Equal(t, providerRows(), fixture.controller.Snapshot().Rows)
		assert.Equal(t, models.NotificationError, fixture.toasts.last().Level)
	})
}

func TestListController_ColumnsFollowCollection(t *testing.T) {
	fixture := newListFixture(t)
	fixture.selectProviders(t)
	assert.Contains(t, fixture.controller.Columns(), ColumnDomain)

	fixture.identity.On("CreateCredential", mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Identity{ID: "uid-10"}, nil).Once()
	fixture.ops[contracts.RoleProvider].On("Add", mock.Anything, "clinic-1", mock.AnythingOfType("models.Entity")).
		Return(&models.Entity{ID: "uid-10", Name: "Eve", Email: "eve@clinic.test"}, nil).Once()

	_, err := fixture.controller.Create(context.Background(), map[string]string{
		contracts.FieldName:     "Eve",
		contracts.FieldEmail:    "eve@clinic.test",
		contracts.FieldPassword: "secret123",
	})
	require.NoError(t, err)

	assert.NotContains(t, fixture.controller.Columns(), ColumnDomain)
}
