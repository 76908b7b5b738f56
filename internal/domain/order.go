package domain

import "time"

type Order struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Lines         []CartLine
	TotalCents    int64
	Status        string
	PlacedAt      time.Time
}

const (
	OrderStatusReceived       = "received"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// IsTerminalStatus reports whether no further transitions exist from status.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled
}

// ValidStatusTransition reports whether an order may move from one status to
// another. Transitions are driven by the external order system; this service
// only reflects them, so anything outside the lifecycle is rejected.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusReceived:
		return to == OrderStatusPreparing || to == OrderStatusCancelled
	case OrderStatusPreparing:
		return to == OrderStatusOutForDelivery || to == OrderStatusCancelled
	case OrderStatusOutForDelivery:
		return to == OrderStatusCompleted || to == OrderStatusCancelled
	default:
		return false
	}
}

// LinesTotalCents sums the captured line prices.
func LinesTotalCents(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.PriceCents
	}
	return total
}
