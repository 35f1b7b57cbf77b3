package staff

import (
	"context"
	"testing"
	"time"

	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorkspaceStore() *WorkspaceStore {
	return NewWorkspaceStore(func(sessionID string) *Workspace {
		return &Workspace{SessionID: sessionID}
	})
}

func TestWorkspaceStore_EvictExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newTestWorkspaceStore()

	expired := store.GetOrCreate(&models.Session{SessionID: "expired", ExpiresAt: now.Add(-time.Minute)})
	store.GetOrCreate(&models.Session{SessionID: "live", ExpiresAt: now.Add(time.Hour)})
	store.GetOrCreate(&models.Session{SessionID: "no-expiry"})
	require.Equal(t, 3, store.Len())

	assert.Equal(t, 1, store.EvictExpired(now))
	assert.Equal(t, 2, store.Len())

	recreated := store.GetOrCreate(&models.Session{SessionID: "expired", ExpiresAt: now.Add(time.Hour)})
	assert.NotSame(t, expired, recreated, "an evicted session starts from a fresh workspace")
}

func TestWorkspaceStore_GetOrCreateRefreshesExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newTestWorkspaceStore()

	first := store.GetOrCreate(&models.Session{SessionID: "session-1", ExpiresAt: now.Add(-time.Minute)})
	second := store.GetOrCreate(&models.Session{SessionID: "session-1", ExpiresAt: now.Add(time.Hour)})
	assert.Same(t, first, second)

	assert.Zero(t, store.EvictExpired(now))
	assert.Equal(t, 1, store.Len())
}

func TestStaffUsecase_EvictExpiredWorkspaces(t *testing.T) {
	fixture := newUsecaseFixture(t)
	uc := fixture.usecase.(*staffUsecase)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	fixture.ops[contracts.RoleProvider].On("Fetch", mock.Anything, "clinic-1").Return(providerRows(), nil)

	expiredSession := &models.Session{SessionID: "session-1", UserID: "user-1", ExpiresAt: now.Add(-time.Second)}
	_, err := uc.List(context.Background(), expiredSession, "clinic-1", contracts.RoleProvider)
	require.NoError(t, err)
	require.Equal(t, 1, uc.Workspaces.Len())

	assert.Equal(t, 1, uc.EvictExpiredWorkspaces(context.Background()))
	assert.Zero(t, uc.Workspaces.Len())
}

type evictionRecorder struct {
	runs chan struct{}
}

func (r *evictionRecorder) EvictExpiredWorkspaces(ctx context.Context) int {
	select {
	case r.runs <- struct{}{}:
	default:
	}
	return 0
}

func TestWorkspaceSweeper_RunsOnSchedule(t *testing.T) {
	recorder := &evictionRecorder{runs: make(chan struct{}, 1)}
	cfg := &config.InternalConfig{App: config.App{WorkspaceSweepCronSpec: "@every 1s"}}

	sweeper := NewWorkspaceSweeper(zap.NewNop(), cfg, recorder)
	sweeper.Start(context.Background())
	defer sweeper.Stop()

	select {
	case <-recorder.runs:
	case <-time.After(3 * time.Second):
		t.Fatal("sweeper did not run")
	}
}

func TestWorkspaceSweeper_InvalidSpecFallsBack(t *testing.T) {
	recorder := &evictionRecorder{runs: make(chan struct{}, 1)}
	cfg := &config.InternalConfig{App: config.App{WorkspaceSweepCronSpec: "not a spec"}}

	sweeper := NewWorkspaceSweeper(zap.NewNop(), cfg, recorder)
	sweeper.Start(context.Background())
	require.NotNil(t, sweeper.cron)
	assert.Len(t, sweeper.cron.Entries(), 1)

	sweeper.Stop()
	sweeper.runOnce(sweeper.runCtx)
	assert.Empty(t, recorder.runs, "a stopped sweeper does not evict")
}
