package session

import (
	"encoding/json"
	"net/http"

	"kazhicho/internal/dto"
	apperrors "kazhicho/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	manager *Manager
	admin   *Session
	logger  *zap.Logger
}

// NewController serves the customer session surface and the admin order
// view. The admin session is a long-lived session owned by the server; it
// accumulates orders delivered over the push channel.
func NewController(manager *Manager, admin *Session, logger *zap.Logger) *Controller {
	return &Controller{
		manager: manager,
		admin:   admin,
		logger:  logger,
	}
}

type openSessionResponse struct {
	SessionID string `json:"session_id"`
}

type cartResponse struct {
	Lines      []dto.OrderLineDTO `json:"lines"`
	Count      int                `json:"count"`
	TotalCents int64              `json:"total"`
}

type addItemRequest struct {
	ItemID int64 `json:"item_id"`
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

func (c *Controller) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	s := c.manager.Open()
	c.writeJSON(w, http.StatusCreated, openSessionResponse{SessionID: s.ID()})
}

func (c *Controller) HandleCloseSession(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	c.manager.Close(s.ID())
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}

	lines := s.CartLines()
	c.writeJSON(w, http.StatusOK, cartResponse{
		Lines:      dto.LinesToDTO(lines),
		Count:      len(lines),
		TotalCents: s.CartTotalCents(),
	})
}

func (c *Controller) HandleAddCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ItemID <= 0 {
		c.writeValidationError(w, "invalid item_id", apperrors.ValidationDetail{
			Field:   "item_id",
			Message: "item_id must be a positive integer",
		})
		return
	}

	if err := s.AddItem(req.ItemID); err != nil {
		c.handleSessionError(w, err, c.logger)
		return
	}

	lines := s.CartLines()
	c.writeJSON(w, http.StatusOK, cartResponse{
		Lines:      dto.LinesToDTO(lines),
		Count:      len(lines),
		TotalCents: s.CartTotalCents(),
	})
}

func (c *Controller) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}

	s.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, ok := c.session(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	placed, err := s.Checkout(r.Context(), req.CustomerName, req.CustomerPhone)
	if err != nil {
		c.handleSessionError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.OrderToDTO(*placed))
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}

	c.writeOrders(w, s)
}

func (c *Controller) HandleAdminOrders(w http.ResponseWriter, r *http.Request) {
	c.writeOrders(w, c.admin)
}

func (c *Controller) writeOrders(w http.ResponseWriter, s *Session) {
	orders := s.Orders()
	out := make([]dto.OrderDTO, len(orders))
	for i, o := range orders {
		out[i] = dto.OrderToDTO(o)
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "sessionID")
	if id == "" {
		c.writeValidationError(w, "invalid sessionID", apperrors.ValidationDetail{
			Field:   "sessionID",
			Message: "sessionID is required",
		})
		return nil, false
	}

	s, ok := c.manager.Get(id)
	if !ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "session not found",
		})
		return nil, false
	}
	return s, true
}

func (c *Controller) handleSessionError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}
	if _, ok := apperrors.IsInvalidCartStateError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "INVALID_CART_STATE",
			"message": err.Error(),
		})
		return
	}
	if _, ok := apperrors.IsSubmissionFailedError(err); ok {
		logger.Warn("order submission failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "SUBMISSION_FAILED",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
