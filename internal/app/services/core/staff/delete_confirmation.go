package staff

import (
	"context"
	"fmt"
	"sync"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
)

// DeleteFunc removes the record with entityID remotely.
type DeleteFunc func(ctx context.Context, entityID string) error

// DeleteConfirmation holds at most one pending deletion. It is never open
// without a target.
type DeleteConfirmation struct {
	mu      sync.Mutex
	open    bool
	target  *models.Entity
	message string
}

func NewDeleteConfirmation() *DeleteConfirmation {
	return &DeleteConfirmation{}
}

// Open stores target and renders the message with its display name as of now.
func (d *DeleteConfirmation) Open(target *models.Entity) error {
	if target == nil {
		return exceptions.ErrDeleteConfirmationNotOpened()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	snapshot := *target
	d.target = &snapshot
	d.message = fmt.Sprintf(constvars.DeleteConfirmationMessageFormat, target.DisplayName())
	d.open = true
	return nil
}

// Confirm runs del for the pending target and closes only when it succeeds.
func (d *DeleteConfirmation) Confirm(ctx context.Context, del DeleteFunc) (*models.Entity, error) {
	d.mu.Lock()
	if !d.open || d.target == nil {
		d.mu.Unlock()
		return nil, exceptions.ErrDeleteConfirmationNotOpened()
	}
	target := *d.target
	d.mu.Unlock()

	err := del(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if d.target != nil && d.target.ID == target.ID {
		d.closeLocked()
	}
	d.mu.Unlock()

	return &target, nil
}

// Cancel closes the confirmation without any remote call.
func (d *DeleteConfirmation) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

func (d *DeleteConfirmation) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *DeleteConfirmation) Target() *models.Entity {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.target == nil {
		return nil
	}
	snapshot := *d.target
	return &snapshot
}

func (d *DeleteConfirmation) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

func (d *DeleteConfirmation) closeLocked() {
	d.open = false
	d.target = nil
	d.message = ""
}
