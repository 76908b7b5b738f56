package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	placedAt := time.Now()
	lines := []CartLine{
		{ItemID: 3, Name: "Chai", PriceCents: 3000},
		{ItemID: 4, Name: "Samosa", PriceCents: 4000},
	}

	order := Order{
		ID:            1724923456789,
		CustomerName:  "Asha",
		CustomerPhone: "9999999999",
		Lines:         lines,
		TotalCents:    7000,
		Status:        OrderStatusReceived,
		PlacedAt:      placedAt,
	}

	assert.Equal(t, int64(1724923456789), order.ID)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "9999999999", order.CustomerPhone)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, int64(7000), order.TotalCents)
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Equal(t, placedAt, order.PlacedAt)
}

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, "received", OrderStatusReceived)
	assert.Equal(t, "preparing", OrderStatusPreparing)
	assert.Equal(t, "out_for_delivery", OrderStatusOutForDelivery)
	assert.Equal(t, "completed", OrderStatusCompleted)
	assert.Equal(t, "cancelled", OrderStatusCancelled)
}

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusReceived, OrderStatusPreparing, true},
		{OrderStatusReceived, OrderStatusCancelled, true},
		{OrderStatusReceived, OrderStatusOutForDelivery, false},
		{OrderStatusReceived, OrderStatusCompleted, false},
		{OrderStatusPreparing, OrderStatusOutForDelivery, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusReceived, false},
		{OrderStatusOutForDelivery, OrderStatusCompleted, true},
		{OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{OrderStatusOutForDelivery, OrderStatusPreparing, false},
		{OrderStatusCompleted, OrderStatusReceived, false},
		{OrderStatusCancelled, OrderStatusPreparing, false},
		{"", OrderStatusReceived, false},
		{OrderStatusReceived, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(OrderStatusCompleted))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalStatus(OrderStatusReceived))
	assert.False(t, IsTerminalStatus(OrderStatusPreparing))
	assert.False(t, IsTerminalStatus(OrderStatusOutForDelivery))
}

func TestLinesTotalCents(t *testing.T) {
	assert.Equal(t, int64(0), LinesTotalCents(nil))
	assert.Equal(t, int64(0), LinesTotalCents([]CartLine{}))

	lines := []CartLine{
		{PriceCents: 15000},
		{PriceCents: 3000},
		{PriceCents: 3000},
	}
	assert.Equal(t, int64(21000), LinesTotalCents(lines))
}
