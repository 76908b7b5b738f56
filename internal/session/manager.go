package session

import (
	"context"
	"sync"

	"kazhicho/internal/menu"
	"kazhicho/internal/order"
	"kazhicho/internal/push"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager tracks live sessions and their push drains.
type Manager struct {
	catalog   *menu.Catalog
	submitter order.Submitter
	broker    *push.Broker
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	cancels  map[string]context.CancelFunc
	wg       sync.WaitGroup
}

func NewManager(catalog *menu.Catalog, submitter order.Submitter, broker *push.Broker, logger *zap.Logger) *Manager {
	return &Manager{
		catalog:   catalog,
		submitter: submitter,
		broker:    broker,
		logger:    logger,
		sessions:  make(map[string]*Session),
		cancels:   make(map[string]context.CancelFunc),
	}
}

// Open creates a session and starts draining push events for it.
func (m *Manager) Open() *Session {
	s := New(uuid.New().String(), m.catalog, m.submitter, m.broker, m.logger)

	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.cancels[s.ID()] = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		s.Run(ctx)
	}()

	m.logger.Info("session opened", zap.String("sessionId", s.ID()))
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Close tears one session down, cancelling its push subscription.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	cancel, ok := m.cancels[id]
	delete(m.cancels, id)
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		cancel()
		m.logger.Info("session closed", zap.String("sessionId", id))
	}
}

// CloseAll tears every session down and waits for their drains to stop.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	for id, cancel := range m.cancels {
		cancel()
		delete(m.cancels, id)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	m.wg.Wait()
}
