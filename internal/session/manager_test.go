package session

import (
	"testing"

	"kazhicho/internal/menu"
	"kazhicho/internal/order"
	"kazhicho/internal/push"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) (*Manager, *push.Broker) {
	t.Helper()
	catalog := menu.SeedCatalog(menu.SampleMenu(), zap.NewNop())
	broker := push.NewBroker(16, zap.NewNop())
	t.Cleanup(broker.Close)
	m := NewManager(catalog, order.NewLocalSubmitter(zap.NewNop()), broker, zap.NewNop())
	t.Cleanup(m.CloseAll)
	return m, broker
}

func TestManager_OpenAndGet(t *testing.T) {
	m, _ := newTestManager(t)

	s := m.Open()
	assert.NotEmpty(t, s.ID())

	got, ok := m.Get(s.ID())
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m, _ := newTestManager(t)

	s1 := m.Open()
	s2 := m.Open()
	assert.NotEqual(t, s1.ID(), s2.ID())

	assert.NoError(t, s1.AddItem(3))
	assert.Equal(t, 1, s1.CartLen())
	assert.Equal(t, 0, s2.CartLen())
}

func TestManager_Close(t *testing.T) {
	m, _ := newTestManager(t)

	s := m.Open()
	m.Close(s.ID())

	_, ok := m.Get(s.ID())
	assert.False(t, ok)

	// Closing an unknown id is a no-op.
	m.Close("missing")
}

func TestManager_CloseAll(t *testing.T) {
	m, _ := newTestManager(t)

	s1 := m.Open()
	s2 := m.Open()

	m.CloseAll()

	_, ok := m.Get(s1.ID())
	assert.False(t, ok)
	_, ok = m.Get(s2.ID())
	assert.False(t, ok)
}
