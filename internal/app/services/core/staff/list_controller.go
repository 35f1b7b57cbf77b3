package staff

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/core/registry"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ListState string

const (
	ListStateIdle    ListState = "idle"
	ListStateLoading ListState = "loading"
	ListStateReady   ListState = "ready"
	ListStateError   ListState = "error"
)

// NotifyFunc surfaces a toast to the user owning the controller.
type NotifyFunc func(ctx context.Context, level models.NotificationLevel, message string)

// ListSnapshot is a copy of the controller state safe to hand to a view.
// RowsClinicID and RowsRole name the selection the rows were fetched for,
// which differs from ClinicID and Role while a newer fetch is pending or failed.
type ListSnapshot struct {
	ClinicID     string
	Role         contracts.Role
	State        ListState
	Err          error
	Rows         []models.Entity
	Columns      []string
	RowsClinicID string
	RowsRole     contracts.Role
}

// ListController owns the in-memory collection of the selected clinic and role.
// Remote calls run without holding the lock and their results are applied in
// completion order, so overlapping mutations resolve as last response wins.
type ListController struct {
	log      *zap.Logger
	registry *registry.Registry
	identity contracts.IdentityProvider
	notify   NotifyFunc

	mu         sync.Mutex
	generation uint64
	clinicID   string
	descriptor registry.Descriptor
	state      ListState
	lastErr    error
	collection []models.Entity

	// owner of collection
	rowsClinicID string
	rowsRole     contracts.Role
}

func NewListController(logger *zap.Logger, entityRegistry *registry.Registry, identity contracts.IdentityProvider, notify NotifyFunc) *ListController {
	if notify == nil {
		notify = func(context.Context, models.NotificationLevel, string) {}
	}
	return &ListController{
		log:      logger,
		registry: entityRegistry,
		identity: identity,
		notify:   notify,
		state:    ListStateIdle,
	}
}

// Select switches the clinic and role and reloads the collection. On failure the
// previous collection is kept for display, but mutations are rejected until a
// fetch for the new selection succeeds.
func (c *ListController) Select(ctx context.Context, clinicID string, role contracts.Role) error {
	descriptor, err := c.registry.Resolve(role)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.clinicID = clinicID
	c.descriptor = descriptor
	c.state = ListStateLoading
	c.lastErr = nil
	c.mu.Unlock()

	entities, err := descriptor.Operations.Fetch(ctx, clinicID)

	c.mu.Lock()
	defer c.mu.Unlock()

	// a newer selection owns the state now
	if generation != c.generation {
		return err
	}

	if err != nil {
		c.state = ListStateError
		c.lastErr = err
		c.log.Error("ListController.Select failed to fetch entities",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.String(constvars.LoggingRoleKey, descriptor.Label()),
			zap.Error(err),
		)
		c.notify(ctx, models.NotificationError, clientMessage(err))
		return err
	}

	c.collection = entities
	c.rowsClinicID = clinicID
	c.rowsRole = descriptor.Role
	c.state = ListStateReady
	c.log.Info("ListController.Select fetched entities",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingRoleKey, descriptor.Label()),
		zap.Int(constvars.LoggingCountKey, len(entities)),
	)
	return nil
}

// Create registers the credential first when the role needs one and only then
// adds the record remotely. A failed credential step never reaches the backend.
func (c *ListController) Create(ctx context.Context, values map[string]string) (*models.Entity, error) {
	clinicID, descriptor, generation, err := c.current()
	if err != nil {
		return nil, err
	}

	entity := EntityFromValues(descriptor.Role, values)

	if descriptor.RequiresCredential {
		identity, err := c.identity.CreateCredential(ctx, values[contracts.FieldEmail], values[contracts.FieldPassword])
		if err != nil {
			c.fail(ctx, "ListController.Create failed to create credential", descriptor, err)
			return nil, err
		}
		entity.ID = identity.ID
	}

	created, err := descriptor.Operations.Add(ctx, clinicID, entity)
	if err != nil {
		c.fail(ctx, "ListController.Create failed to add entity", descriptor, err)
		return nil, err
	}

	result := models.MergeEntity(entity, *created)

	c.mu.Lock()
	if generation == c.generation {
		c.collection = append(c.collection, result)
	}
	c.mu.Unlock()

	c.notify(ctx, models.NotificationSuccess, fmt.Sprintf(constvars.CreateStaffSuccessMessage, descriptor.Label()))
	return &result, nil
}

// Update sends the edited values and merges the returned record over the
// matching entity. Every other entity stays untouched.
func (c *ListController) Update(ctx context.Context, entityID string, values map[string]string) (*models.Entity, error) {
	clinicID, descriptor, generation, err := c.current()
	if err != nil {
		return nil, err
	}

	if _, ok := c.Find(entityID); !ok {
		return nil, exceptions.ErrEntityNotInCollection(entityID)
	}

	patch := EntityFromValues(descriptor.Role, values)
	patch.ID = entityID

	updated, err := descriptor.Operations.Update(ctx, clinicID, entityID, patch)
	if err != nil {
		c.fail(ctx, "ListController.Update failed to update entity", descriptor, err)
		return nil, err
	}

	var result models.Entity
	c.mu.Lock()
	if generation == c.generation {
		for i := range c.collection {
			if c.collection[i].ID == entityID {
				c.collection[i] = models.MergeEntity(c.collection[i], *updated)
				result = c.collection[i]
				break
			}
		}
	}
	c.mu.Unlock()

	if result.ID == "" {
		result = *updated
	}

	c.notify(ctx, models.NotificationSuccess, fmt.Sprintf(constvars.UpdateStaffSuccessMessage, descriptor.Label()))
	return &result, nil
}

// Delete removes exactly the entity with entityID once the backend accepted it.
func (c *ListController) Delete(ctx context.Context, entityID string) error {
	clinicID, descriptor, generation, err := c.current()
	if err != nil {
		return err
	}

	err = descriptor.Operations.Delete(ctx, clinicID, entityID)
	if err != nil {
		c.fail(ctx, "ListController.Delete failed to delete entity", descriptor, err)
		return err
	}

	c.mu.Lock()
	if generation == c.generation {
		remaining := make([]models.Entity, 0, len(c.collection))
		for _, entity := range c.collection {
			if entity.ID != entityID {
				remaining = append(remaining, entity)
			}
		}
		c.collection = remaining
	}
	c.mu.Unlock()

	c.notify(ctx, models.NotificationSuccess, fmt.Sprintf(constvars.DeleteStaffSuccessMessage, descriptor.Label()))
	return nil
}

// Find only looks at a collection loaded for the current selection.
func (c *ListController) Find(entityID string) (models.Entity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loadedLocked() {
		return models.Entity{}, false
	}
	for _, entity := range c.collection {
		if entity.ID == entityID {
			return entity, true
		}
	}
	return models.Entity{}, false
}

// Columns is recomputed from the current collection on every call.
func (c *ListController) Columns() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return InferColumns(c.collection)
}

func (c *ListController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]models.Entity, len(c.collection))
	copy(rows, c.collection)

	return ListSnapshot{
		ClinicID: c.clinicID,
		Role:     c.descriptor.Role,
		State:    c.state,
		Err:      c.lastErr,
		Rows:     rows,
		Columns:  InferColumns(rows),

		RowsClinicID: c.rowsClinicID,
		RowsRole:     c.rowsRole,
	}
}

// Selected reports whether the controller currently shows clinicID and role.
func (c *ListController) Selected(clinicID string, role contracts.Role) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != ListStateIdle && c.clinicID == clinicID && c.descriptor.Role == role
}

// Loaded reports whether the collection was fetched for clinicID and role and
// is safe to mutate.
func (c *ListController) Loaded(clinicID string, role contracts.Role) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedLocked() && c.clinicID == clinicID && c.descriptor.Role == role
}

func (c *ListController) loadedLocked() bool {
	return c.state == ListStateReady &&
		c.rowsClinicID == c.clinicID &&
		c.rowsRole == c.descriptor.Role
}

func (c *ListController) current() (string, registry.Descriptor, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == ListStateIdle || c.descriptor.Operations == nil {
		return "", registry.Descriptor{}, 0, exceptions.ErrNoRoleSelected()
	}
	if !c.loadedLocked() {
		return "", registry.Descriptor{}, 0, exceptions.ErrSelectionNotLoaded(c.clinicID, c.descriptor.Label())
	}
	return c.clinicID, c.descriptor, c.generation, nil
}

func (c *ListController) fail(ctx context.Context, message string, descriptor registry.Descriptor, err error) {
	c.log.Error(message,
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRoleKey, descriptor.Label()),
		zap.Error(err),
	)
	c.notify(ctx, models.NotificationError, clientMessage(err))
}

// EntityFromValues builds the record sent to the backend from form values.
// The role field is only carried for the role that owns it.
func EntityFromValues(role contracts.Role, values map[string]string) models.Entity {
	entity := models.Entity{
		Name:  values[contracts.FieldName],
		Email: values[contracts.FieldEmail],
	}

	switch role.RequiredField() {
	case contracts.FieldDomain:
		if domain, ok := values[contracts.FieldDomain]; ok && domain != "" {
			entity.Domain = &domain
		}
	case contracts.FieldRoomNumber:
		if roomNumber, ok := values[contracts.FieldRoomNumber]; ok && roomNumber != "" {
			entity.RoomNumber = &roomNumber
		}
	}

	return entity
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	var authErr *exceptions.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return err.Error()
}
