package staff

import (
	"sync"
	"time"

	"clinic-dashboard-service/internal/app/models"
)

// Workspace is the dashboard state of one session: the staff table, the add/edit
// form and the delete confirmation.
type Workspace struct {
	SessionID string
	List      *ListController
	Form      *FormController
	Delete    *DeleteConfirmation

	// formMu serializes form submissions, deleteMu the confirmation flow.
	formMu   sync.Mutex
	deleteMu sync.Mutex

	// guarded by WorkspaceStore.mu
	expiresAt time.Time
}

type WorkspaceFactory func(sessionID string) *Workspace

// WorkspaceStore keeps one workspace per session id until the session is
// logged out or expires.
type WorkspaceStore struct {
	mu         sync.Mutex
	factory    WorkspaceFactory
	workspaces map[string]*Workspace
}

func NewWorkspaceStore(factory WorkspaceFactory) *WorkspaceStore {
	return &WorkspaceStore{
		factory:    factory,
		workspaces: make(map[string]*Workspace),
	}
}

// GetOrCreate returns the workspace of session and moves its expiry to the
// session's.
func (s *WorkspaceStore) GetOrCreate(session *models.Session) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	workspace, ok := s.workspaces[session.SessionID]
	if !ok {
		workspace = s.factory(session.SessionID)
		s.workspaces[session.SessionID] = workspace
	}
	workspace.expiresAt = session.ExpiresAt
	return workspace
}

func (s *WorkspaceStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workspaces, sessionID)
}

// EvictExpired drops every workspace whose session expired before now. A zero
// expiry never expires.
func (s *WorkspaceStore) EvictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for sessionID, workspace := range s.workspaces {
		if workspace.expiresAt.IsZero() || !now.After(workspace.expiresAt) {
			continue
		}
		delete(s.workspaces, sessionID)
		evicted++
	}
	return evicted
}

func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}
