package staff

import (
	"context"

	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultWorkspaceSweepSpec = "@every 5m"

type WorkspaceEvictor interface {
	EvictExpiredWorkspaces(ctx context.Context) int
}

// WorkspaceSweeper periodically drops workspaces whose session expired.
type WorkspaceSweeper struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	evictor WorkspaceEvictor
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorkspaceSweeper(log *zap.Logger, cfg *config.InternalConfig, evictor WorkspaceEvictor) *WorkspaceSweeper {
	return &WorkspaceSweeper{log: log, cfg: cfg, evictor: evictor}
}

func (w *WorkspaceSweeper) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.App.WorkspaceSweepCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("staff.WorkspaceSweeper invalid cron spec, falling back to default",
			zap.String("spec", w.cfg.App.WorkspaceSweepCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultWorkspaceSweepSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running sweep to finish.
func (w *WorkspaceSweeper) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *WorkspaceSweeper) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	evicted := w.evictor.EvictExpiredWorkspaces(ctx)
	w.log.Debug("staff.WorkspaceSweeper run finished", zap.Int(constvars.LoggingCountKey, evicted))
}
