package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"kazhicho/internal/domain"
	apperrors "kazhicho/internal/errors"
	"kazhicho/internal/menu"
	"kazhicho/internal/order"
	"kazhicho/internal/push"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSubmitter struct {
	SubmitFunc func(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error)
}

func (m *mockSubmitter) Submit(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
	return m.SubmitFunc(ctx, customerName, customerPhone, lines)
}

func newTestSession(t *testing.T, submitter order.Submitter) (*Session, *push.Broker) {
	t.Helper()
	catalog := menu.SeedCatalog(menu.SampleMenu(), zap.NewNop())
	broker := push.NewBroker(16, zap.NewNop())
	t.Cleanup(broker.Close)
	if submitter == nil {
		submitter = order.NewLocalSubmitter(zap.NewNop())
	}
	return New("test-session", catalog, submitter, broker, zap.NewNop()), broker
}

func TestSession_AddItem(t *testing.T) {
	s, _ := newTestSession(t, nil)

	require.NoError(t, s.AddItem(3)) // Chai
	require.NoError(t, s.AddItem(4)) // Samosa

	assert.Equal(t, 2, s.CartLen())
	assert.Equal(t, int64(7000), s.CartTotalCents())
}

func TestSession_AddItem_DuplicatesMakeSeparateLines(t *testing.T) {
	s, _ := newTestSession(t, nil)

	require.NoError(t, s.AddItem(3))
	require.NoError(t, s.AddItem(3))

	lines := s.CartLines()
	assert.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
}

func TestSession_AddItem_UnknownRejected(t *testing.T) {
	s, _ := newTestSession(t, nil)

	err := s.AddItem(999)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, s.CartLen())
}

func TestSession_AddItem_UnavailableRejected(t *testing.T) {
	catalog := menu.SeedCatalog([]domain.MenuItem{
		{ID: 1, Name: "Masala Dosa", PriceCents: 15000, Available: false},
	}, zap.NewNop())
	broker := push.NewBroker(16, zap.NewNop())
	defer broker.Close()
	s := New("test", catalog, order.NewLocalSubmitter(zap.NewNop()), broker, zap.NewNop())

	err := s.AddItem(1)
	require.Error(t, err)
	_, ok := apperrors.IsInvalidCartStateError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, s.CartLen())
}

func TestSession_ClearCart(t *testing.T) {
	s, _ := newTestSession(t, nil)
	require.NoError(t, s.AddItem(1))

	s.ClearCart()

	assert.Equal(t, 0, s.CartLen())
	assert.Equal(t, int64(0), s.CartTotalCents())
}

func TestSession_Checkout_PlacesOrderAndClearsCart(t *testing.T) {
	s, _ := newTestSession(t, nil)
	require.NoError(t, s.AddItem(3))
	require.NoError(t, s.AddItem(4))

	placed, err := s.Checkout(context.Background(), "Asha", "9999999999")
	require.NoError(t, err)

	assert.Equal(t, int64(7000), placed.TotalCents)
	assert.Len(t, placed.Lines, 2)
	assert.Equal(t, domain.OrderStatusReceived, placed.Status)

	// Cart cleared only after the order is recorded.
	assert.Equal(t, 0, s.CartLen())
	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
}

func TestSession_Checkout_EmptyCartRejected(t *testing.T) {
	called := false
	s, _ := newTestSession(t, &mockSubmitter{
		SubmitFunc: func(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
			called = true
			return nil, nil
		},
	})

	placed, err := s.Checkout(context.Background(), "Asha", "9999999999")
	require.Error(t, err)
	assert.Nil(t, placed)
	_, ok := apperrors.IsInvalidCartStateError(err)
	assert.True(t, ok)
	assert.False(t, called, "empty cart must be rejected before the submitter is reached")
	assert.Empty(t, s.Orders())
}

func TestSession_Checkout_MissingCustomerDetails(t *testing.T) {
	s, _ := newTestSession(t, nil)
	require.NoError(t, s.AddItem(3))

	_, err := s.Checkout(context.Background(), "", "")
	require.Error(t, err)
	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Details, 2)
	assert.Equal(t, 1, s.CartLen())
}

func TestSession_Checkout_FailedSubmissionPreservesCart(t *testing.T) {
	s, _ := newTestSession(t, &mockSubmitter{
		SubmitFunc: func(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
			return nil, apperrors.NewSubmissionFailedError("order submission failed", errors.New("timeout"))
		},
	})
	require.NoError(t, s.AddItem(3))
	require.NoError(t, s.AddItem(4))

	placed, err := s.Checkout(context.Background(), "Asha", "9999999999")
	require.Error(t, err)
	assert.Nil(t, placed)
	_, ok := apperrors.IsSubmissionFailedError(err)
	assert.True(t, ok)

	// Cart intact for retry, nothing recorded.
	assert.Equal(t, 2, s.CartLen())
	assert.Equal(t, int64(7000), s.CartTotalCents())
	assert.Empty(t, s.Orders())
}

func TestSession_Checkout_RetryAfterFailure(t *testing.T) {
	attempts := 0
	local := order.NewLocalSubmitter(zap.NewNop())
	s, _ := newTestSession(t, &mockSubmitter{
		SubmitFunc: func(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
			attempts++
			if attempts == 1 {
				return nil, apperrors.NewSubmissionFailedError("order submission failed", nil)
			}
			return local.Submit(ctx, customerName, customerPhone, lines)
		},
	})
	require.NoError(t, s.AddItem(3))

	_, err := s.Checkout(context.Background(), "Asha", "9999999999")
	require.Error(t, err)

	placed, err := s.Checkout(context.Background(), "Asha", "9999999999")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), placed.TotalCents)
	assert.Equal(t, 0, s.CartLen())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSession_Run_AppliesExternalOrders(t *testing.T) {
	s, broker := newTestSession(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	external := domain.Order{ID: 42, CustomerName: "Ravi", Status: domain.OrderStatusReceived, TotalCents: 15000}
	broker.Publish(push.OrderEvent{Order: external})

	waitFor(t, func() bool { return len(s.Orders()) == 1 })

	// Same order pushed twice leaves the feed length unchanged.
	broker.Publish(push.OrderEvent{Order: external})
	broker.Publish(push.StatusEvent{OrderID: 42, Status: domain.OrderStatusPreparing})

	waitFor(t, func() bool {
		orders := s.Orders()
		return len(orders) == 1 && orders[0].Status == domain.OrderStatusPreparing
	})

	cancel()
	<-done
}

func TestSession_Run_StopsWhenBrokerCloses(t *testing.T) {
	s, broker := newTestSession(t, nil)

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	broker.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after broker close")
	}
}
