package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/cashease/backend/internal/application/adapter"
)

// Manager owns the open sessions, one per logged-in user.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	loads    singleflight.Group

	store    Store
	notifier adapter.Notifier
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, used for streak dates and monthly totals.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger handed to sessions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a session manager. notifier may be nil.
func NewManager(store Store, notifier adapter.Notifier, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[uuid.UUID]*Session),
		store:    store,
		notifier: notifier,
		now:      time.Now,
		logger:   slog.Default().With("component", "session"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns the session for a user who just signed in. A session that is
// already open is kept, so requests in flight and new ones share one snapshot.
func (m *Manager) Open(ctx context.Context, userID uuid.UUID) (*Session, error) {
	return m.session(ctx, userID)
}

// Get returns the user's open session, opening one if none exists. This lets
// a valid access token keep working after the process restarted.
func (m *Manager) Get(ctx context.Context, userID uuid.UUID) (*Session, error) {
	if s, ok := m.lookup(userID); ok {
		return s, nil
	}
	return m.session(ctx, userID)
}

func (m *Manager) lookup(userID uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// session loads at most one snapshot per user at a time. Concurrent callers
// wait for the same load and receive the same Session.
func (m *Manager) session(ctx context.Context, userID uuid.UUID) (*Session, error) {
	v, err, _ := m.loads.Do(userID.String(), func() (any, error) {
		if s, ok := m.lookup(userID); ok {
			return s, nil
		}

		s := &Session{
			userID:   userID,
			store:    m.store,
			notifier: m.notifier,
			now:      m.now,
			logger:   m.logger,
		}
		if err := s.load(ctx); err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.sessions[userID] = s
		m.mu.Unlock()

		m.logger.Info("Session opened",
			"user_id", userID,
			"expenses", len(s.expenses),
			"goals", len(s.goals),
		)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Close discards the user's session.
func (m *Manager) Close(userID uuid.UUID) {
	m.mu.Lock()
	_, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		m.logger.Info("Session closed", "user_id", userID)
	}
}

// Active returns the number of open sessions.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
