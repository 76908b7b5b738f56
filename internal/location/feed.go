package location

import (
	"sync"

	"kazhicho/internal/domain"
	apperrors "kazhicho/internal/errors"

	"go.uber.org/zap"
)

// Feed holds the last known truck position. Each update replaces the value
// wholesale; no history is kept.
type Feed struct {
	mu      sync.RWMutex
	current domain.TruckLocation
	logger  *zap.Logger
}

func NewFeed(initial domain.TruckLocation, logger *zap.Logger) *Feed {
	return &Feed{current: initial, logger: logger}
}

// Update replaces the current position. Out-of-range coordinates are
// rejected and the last known value is kept.
func (f *Feed) Update(lat, lng float64) error {
	loc := domain.TruckLocation{Lat: lat, Lng: lng}
	if !loc.Valid() {
		f.logger.Warn("ignoring out-of-range truck location", zap.Float64("lat", lat), zap.Float64("lng", lng))
		return apperrors.NewValidationError("coordinates out of range",
			apperrors.ValidationDetail{Field: "lat", Message: "latitude must be within [-90, 90]"},
			apperrors.ValidationDetail{Field: "lng", Message: "longitude must be within [-180, 180]"},
		)
	}

	f.mu.Lock()
	f.current = loc
	f.mu.Unlock()
	return nil
}

func (f *Feed) Current() domain.TruckLocation {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}
