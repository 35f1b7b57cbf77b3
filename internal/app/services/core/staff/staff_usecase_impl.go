package staff

import (
	"context"
	"errors"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/core/registry"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/responses"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type staffUsecase struct {
	Log            *zap.Logger
	Registry       *registry.Registry
	Notifier       contracts.Notifier
	EventPublisher contracts.EventPublisher
	Workspaces     *WorkspaceStore
	now            func() time.Time
}

func NewStaffUsecase(
	logger *zap.Logger,
	entityRegistry *registry.Registry,
	identityProvider contracts.IdentityProvider,
	notifier contracts.Notifier,
	eventPublisher contracts.EventPublisher,
) contracts.StaffUsecase {
	uc := &staffUsecase{
		Log:            logger,
		Registry:       entityRegistry,
		Notifier:       notifier,
		EventPublisher: eventPublisher,
		now:            time.Now,
	}

	uc.Workspaces = NewWorkspaceStore(func(sessionID string) *Workspace {
		return &Workspace{
			SessionID: sessionID,
			List:      NewListController(logger, entityRegistry, identityProvider, uc.notifyFunc(sessionID)),
			Form:      NewFormController(),
			Delete:    NewDeleteConfirmation(),
		}
	})

	return uc
}

func (uc *staffUsecase) List(ctx context.Context, session *models.Session, clinicID string, role contracts.Role) (*responses.StaffView, error) {
	workspace := uc.Workspaces.GetOrCreate(session)

	snapshot := workspace.List.Snapshot()
	if !workspace.List.Selected(clinicID, role) || snapshot.State != ListStateReady {
		err := uc.selectRole(ctx, workspace, clinicID, role)
		if err != nil && !isRemoteFailure(err) {
			return nil, err
		}
		snapshot = workspace.List.Snapshot()
	}

	view := &responses.StaffView{
		ClinicID: snapshot.ClinicID,
		Role:     snapshot.Role.Label(),
		RoleType: snapshot.Role.Type(),
		State:    string(snapshot.State),
		Columns:  snapshot.Columns,
		Rows:     snapshot.Rows,
	}
	if snapshot.RowsRole != 0 && (snapshot.RowsRole != snapshot.Role || snapshot.RowsClinicID != snapshot.ClinicID) {
		view.RowsClinicID = snapshot.RowsClinicID
		view.RowsRole = snapshot.RowsRole.Label()
	}
	if snapshot.Err != nil {
		view.Error = clientMessage(snapshot.Err)
	}
	return view, nil
}

func (uc *staffUsecase) Add(ctx context.Context, session *models.Session, clinicID string, role contracts.Role, values map[string]string) (*models.Entity, error) {
	workspace := uc.Workspaces.GetOrCreate(session)
	workspace.formMu.Lock()
	defer workspace.formMu.Unlock()

	descriptor, err := uc.ensureSelected(ctx, workspace, clinicID, role)
	if err != nil {
		return nil, err
	}

	workspace.Form.Open(contracts.FormModeAdd, nil, descriptor.RoleField())
	fillForm(workspace.Form, values)

	var created *models.Entity
	_, err = workspace.Form.Submit(ctx, func(ctx context.Context, values map[string]string) error {
		entity, err := workspace.List.Create(ctx, values)
		if err != nil {
			return err
		}
		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, session, constvars.EventStaffCreated, clinicID, descriptor, created.ID)
	return created, nil
}

func (uc *staffUsecase) Edit(ctx context.Context, session *models.Session, clinicID string, role contracts.Role, entityID string, values map[string]string) (*models.Entity, error) {
	workspace := uc.Workspaces.GetOrCreate(session)
	workspace.formMu.Lock()
	defer workspace.formMu.Unlock()

	descriptor, err := uc.ensureSelected(ctx, workspace, clinicID, role)
	if err != nil {
		return nil, err
	}

	target, ok := workspace.List.Find(entityID)
	if !ok {
		return nil, exceptions.ErrEntityNotInCollection(entityID)
	}

	workspace.Form.Open(contracts.FormModeEdit, &target, descriptor.RoleField())
	fillForm(workspace.Form, values)

	var updated *models.Entity
	_, err = workspace.Form.Submit(ctx, func(ctx context.Context, values map[string]string) error {
		entity, err := workspace.List.Update(ctx, entityID, values)
		if err != nil {
			return err
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, session, constvars.EventStaffUpdated, clinicID, descriptor, entityID)
	return updated, nil
}

func (uc *staffUsecase) OpenDelete(ctx context.Context, session *models.Session, clinicID string, role contracts.Role, entityID string) (*responses.DeleteConfirmation, error) {
	workspace := uc.Workspaces.GetOrCreate(session)
	workspace.deleteMu.Lock()
	defer workspace.deleteMu.Unlock()

	_, err := uc.ensureSelected(ctx, workspace, clinicID, role)
	if err != nil {
		return nil, err
	}

	target, ok := workspace.List.Find(entityID)
	if !ok {
		return nil, exceptions.ErrEntityNotInCollection(entityID)
	}

	err = workspace.Delete.Open(&target)
	if err != nil {
		return nil, err
	}

	return &responses.DeleteConfirmation{
		EntityID: target.ID,
		Message:  workspace.Delete.Message(),
	}, nil
}

func (uc *staffUsecase) ConfirmDelete(ctx context.Context, session *models.Session, clinicID string, role contracts.Role) (*models.Entity, error) {
	workspace := uc.Workspaces.GetOrCreate(session)
	workspace.deleteMu.Lock()
	defer workspace.deleteMu.Unlock()

	descriptor, err := uc.ensureSelected(ctx, workspace, clinicID, role)
	if err != nil {
		return nil, err
	}

	deleted, err := workspace.Delete.Confirm(ctx, workspace.List.Delete)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, session, constvars.EventStaffDeleted, clinicID, descriptor, deleted.ID)
	return deleted, nil
}

func (uc *staffUsecase) CancelDelete(ctx context.Context, session *models.Session, clinicID string, role contracts.Role) error {
	workspace := uc.Workspaces.GetOrCreate(session)
	workspace.deleteMu.Lock()
	defer workspace.deleteMu.Unlock()

	workspace.Delete.Cancel()

	uc.Log.Debug("staffUsecase.CancelDelete closed confirmation",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingRoleKey, role.Label()),
	)
	return nil
}

func (uc *staffUsecase) DropWorkspace(sessionID string) {
	uc.Workspaces.Drop(sessionID)
}

// EvictExpiredWorkspaces drops the workspaces of sessions that expired without
// a logout.
func (uc *staffUsecase) EvictExpiredWorkspaces(ctx context.Context) int {
	evicted := uc.Workspaces.EvictExpired(uc.now())
	if evicted > 0 {
		uc.Log.Info("staffUsecase.EvictExpiredWorkspaces dropped expired workspaces",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int(constvars.LoggingCountKey, evicted),
		)
	}
	return evicted
}

// ensureSelected makes the workspace show clinicID and role, loading the
// collection when the selection changed or the last fetch failed.
func (uc *staffUsecase) ensureSelected(ctx context.Context, workspace *Workspace, clinicID string, role contracts.Role) (registry.Descriptor, error) {
	descriptor, err := uc.Registry.Resolve(role)
	if err != nil {
		return registry.Descriptor{}, err
	}

	if workspace.List.Loaded(clinicID, role) {
		return descriptor, nil
	}

	err = uc.selectRole(ctx, workspace, clinicID, role)
	if err != nil {
		return registry.Descriptor{}, err
	}
	return descriptor, nil
}

// selectRole reloads the list. A changed selection drops any pending
// confirmation and open form, since their targets belong to the old list.
func (uc *staffUsecase) selectRole(ctx context.Context, workspace *Workspace, clinicID string, role contracts.Role) error {
	if !workspace.List.Selected(clinicID, role) {
		workspace.Delete.Cancel()
		workspace.Form.Close()
	}
	return workspace.List.Select(ctx, clinicID, role)
}

func (uc *staffUsecase) notifyFunc(sessionID string) NotifyFunc {
	return func(ctx context.Context, level models.NotificationLevel, message string) {
		err := uc.Notifier.Notify(ctx, sessionID, level, message)
		if err != nil {
			uc.Log.Warn("staffUsecase failed to queue notification",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}
}

func (uc *staffUsecase) publish(ctx context.Context, session *models.Session, event, clinicID string, descriptor registry.Descriptor, entityID string) {
	err := uc.EventPublisher.Publish(ctx, models.StaffEvent{
		Event:      event,
		ClinicID:   clinicID,
		Role:       descriptor.TypeTag(),
		EntityID:   entityID,
		ActorID:    session.UserID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("staffUsecase failed to publish staff event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingEntityIDKey, entityID),
			zap.Error(err),
		)
	}
}

func fillForm(form *FormController, values map[string]string) {
	for name, value := range values {
		form.SetField(name, value)
	}
}

// isRemoteFailure reports errors that leave the list usable in its error state.
func isRemoteFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return true
	}
	return customErr.StatusCode == constvars.StatusBadGateway || customErr.StatusCode == constvars.StatusGatewayTimeout
}
