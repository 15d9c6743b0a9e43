package session

import (
	"sync"
	"time"

	"github.com/Tyler2517/creditkeeper/internal/service"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns the component state for one browser session: the record
// editor, its ledger view and the analytics selection. Nothing here is
// persisted; a session dies with the process.
type Session struct {
	ID        string
	Editor    *service.Editor
	Ledger    *service.LedgerView
	Analytics *service.Analytics

	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	backend  backend.Client
	logger   *zap.Logger
}

func NewManager(backendClient backend.Client, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		backend:  backendClient,
		logger:   logger,
	}
}

// GetOrCreate resolves the session for a cookie value, minting a fresh one
// when the id is unknown or empty. The editor is wired to the session's own
// ledger view so a credit commit reloads the history the same browser sees.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if sess, ok := m.sessions[id]; ok {
			sess.lastSeen = time.Now()
			return sess
		}
	}

	ledger := service.NewLedgerView(m.backend, m.logger)
	sess := &Session{
		ID:        uuid.NewString(),
		Editor:    service.NewEditor(m.backend, ledger, m.logger),
		Ledger:    ledger,
		Analytics: service.NewAnalytics(m.backend, m.logger),
		lastSeen:  time.Now(),
	}
	m.sessions[sess.ID] = sess

	m.logger.Debug("Session created", zap.String("sessionID", sess.ID))
	return sess
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
