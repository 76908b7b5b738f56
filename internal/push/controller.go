package push

import (
	"encoding/json"
	"net/http"

	"kazhicho/internal/domain"
	"kazhicho/internal/dto"
	apperrors "kazhicho/internal/errors"

	"go.uber.org/zap"
)

// Controller is the delivery surface for the external push collaborator.
// Malformed payloads are rejected before anything is published, so a bad
// delivery never corrupts the feeds.
type Controller struct {
	broker *Broker
	logger *zap.Logger
}

func NewController(broker *Broker, logger *zap.Logger) *Controller {
	return &Controller{
		broker: broker,
		logger: logger,
	}
}

func (c *Controller) HandleLocationUpdate(w http.ResponseWriter, r *http.Request) {
	var payload dto.LocationUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !(domain.TruckLocation{Lat: payload.Lat, Lng: payload.Lng}).Valid() {
		c.writeValidationError(w, "coordinates out of range",
			apperrors.ValidationDetail{Field: "lat", Message: "latitude must be within [-90, 90]"},
			apperrors.ValidationDetail{Field: "lng", Message: "longitude must be within [-180, 180]"},
		)
		return
	}

	c.broker.Publish(LocationEvent{Lat: payload.Lat, Lng: payload.Lng})
	w.WriteHeader(http.StatusAccepted)
}

func (c *Controller) HandleOrderCreated(w http.ResponseWriter, r *http.Request) {
	var payload dto.OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if payload.ID == 0 {
		c.writeValidationError(w, "invalid order", apperrors.ValidationDetail{
			Field:   "id",
			Message: "order id is required",
		})
		return
	}
	if payload.Status == "" {
		payload.Status = domain.OrderStatusReceived
	}

	c.broker.Publish(OrderEvent{Order: dto.OrderFromDTO(payload)})
	w.WriteHeader(http.StatusAccepted)
}

func (c *Controller) HandleStatusChanged(w http.ResponseWriter, r *http.Request) {
	var payload dto.OrderStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if payload.OrderID == 0 {
		c.writeValidationError(w, "invalid status update", apperrors.ValidationDetail{
			Field:   "order_id",
			Message: "order_id is required",
		})
		return
	}

	switch payload.Status {
	case domain.OrderStatusPreparing, domain.OrderStatusOutForDelivery,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		c.writeValidationError(w, "invalid status update", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be a known order status",
		})
		return
	}

	c.broker.Publish(StatusEvent{OrderID: payload.OrderID, Status: payload.Status})
	w.WriteHeader(http.StatusAccepted)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
