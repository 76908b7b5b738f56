package push

import "kazhicho/internal/domain"

// Event is a message delivered by the external real-time channel. The
// service only consumes these; it never publishes back to the source.
type Event interface {
	event()
}

// LocationEvent carries a fresh truck position.
type LocationEvent struct {
	Lat float64
	Lng float64
}

// OrderEvent announces an order placed through another channel or device.
type OrderEvent struct {
	Order domain.Order
}

// StatusEvent reflects a lifecycle transition computed by the external order
// system.
type StatusEvent struct {
	OrderID int64
	Status  string
}

func (LocationEvent) event() {}
func (OrderEvent) event()    {}
func (StatusEvent) event()   {}
