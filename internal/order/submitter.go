package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"kazhicho/internal/domain"
	"kazhicho/internal/dto"
	apperrors "kazhicho/internal/errors"

	"go.uber.org/zap"
)

// Submitter turns cart contents and customer details into a placed order.
// The variant is chosen at construction time: LocalSubmitter synthesizes the
// order in-process for the offline/demo deployment, HTTPSubmitter hands it
// to the external order service.
type Submitter interface {
	Submit(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error)
}

// LocalSubmitter creates orders in-process with a time-derived id. The guard
// against the clock standing still keeps ids unique within the process.
type LocalSubmitter struct {
	mu     sync.Mutex
	lastID int64
	now    func() time.Time
	logger *zap.Logger
}

func NewLocalSubmitter(logger *zap.Logger) *LocalSubmitter {
	return &LocalSubmitter{now: time.Now, logger: logger}
}

func (s *LocalSubmitter) Submit(_ context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
	placedAt := s.now()

	s.mu.Lock()
	id := placedAt.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.mu.Unlock()

	o := &domain.Order{
		ID:            id,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Lines:         append([]domain.CartLine(nil), lines...),
		TotalCents:    domain.LinesTotalCents(lines),
		Status:        domain.OrderStatusReceived,
		PlacedAt:      placedAt,
	}

	s.logger.Info("order placed locally", zap.Int64("orderId", o.ID), zap.Int64("totalCents", o.TotalCents), zap.Int("lineCount", len(o.Lines)))
	return o, nil
}

// HTTPSubmitter posts the order to the external order service and adopts the
// id and status it returns. Any transport failure, timeout or non-2xx reply
// surfaces as a SubmissionFailedError so the caller keeps the cart intact.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	logger   *zap.Logger
}

func NewHTTPSubmitter(endpoint string, timeout time.Duration, logger *zap.Logger) *HTTPSubmitter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{},
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, customerName, customerPhone string, lines []domain.CartLine) (*domain.Order, error) {
	reqBody := dto.NewSubmitOrderRequest(customerName, customerPhone, lines)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding order submission", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.NewInternalError("building order submission request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("order submission transport failure", zap.Error(err))
		return nil, apperrors.NewSubmissionFailedError("order submission failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error("order submission rejected", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, apperrors.NewSubmissionFailedError(fmt.Sprintf("order service replied %d", resp.StatusCode), nil)
	}

	var orderDTO dto.OrderDTO
	if err := json.NewDecoder(resp.Body).Decode(&orderDTO); err != nil {
		return nil, apperrors.NewSubmissionFailedError("decoding order service response", err)
	}

	o := dto.OrderFromDTO(orderDTO)
	s.logger.Info("order placed via order service", zap.Int64("orderId", o.ID), zap.String("status", o.Status))
	return &o, nil
}
