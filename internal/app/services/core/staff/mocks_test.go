package staff

import (
	"context"
	"sync"

	"clinic-dashboard-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockEntityOperations struct {
	mock.Mock
}

func (m *MockEntityOperations) Fetch(ctx context.Context, clinicID string) ([]models.Entity, error) {
	args := m.Called(ctx, clinicID)
	entities, _ := args.Get(0).([]models.Entity)
	return entities, args.Error(1)
}

func (m *MockEntityOperations) Add(ctx context.Context, clinicID string, entity models.Entity) (*models.Entity, error) {
	args := m.Called(ctx, clinicID, entity)
	created, _ := args.Get(0).(*models.Entity)
	return created, args.Error(1)
}

func (m *MockEntityOperations) Update(ctx context.Context, clinicID, entityID string, entity models.Entity) (*models.Entity, error) {
	args := m.Called(ctx, clinicID, entityID, entity)
	updated, _ := args.Get(0).(*models.Entity)
	return updated, args.Error(1)
}

func (m *MockEntityOperations) Delete(ctx context.Context, clinicID, entityID string) error {
	args := m.Called(ctx, clinicID, entityID)
	return args.Error(0)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) CreateCredential(ctx context.Context, email, password string) (*models.Identity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) SendVerificationEmail(ctx context.Context, identity *models.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockIdentityProvider) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, sessionID string, level models.NotificationLevel, message string) error {
	args := m.Called(ctx, sessionID, level, message)
	return args.Error(0)
}

func (m *MockNotifier) Drain(ctx context.Context, sessionID string) ([]models.Notification, error) {
	args := m.Called(ctx, sessionID)
	notifications, _ := args.Get(0).([]models.Notification)
	return notifications, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.StaffEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type toast struct {
	Level   models.NotificationLevel
	Message string
}

// toastRecorder collects toasts raised by a controller.
type toastRecorder struct {
	mu     sync.Mutex
	toasts []toast
}

func (r *toastRecorder) notify(_ context.Context, level models.NotificationLevel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, toast{Level: level, Message: message})
}

func (r *toastRecorder) last() toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return toast{}
	}
	return r.toasts[len(r.toasts)-1]
}

func strPtr(value string) *string {
	return &value
}
