package location

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	feed   *Feed
	logger *zap.Logger
}

func NewController(feed *Feed, logger *zap.Logger) *Controller {
	return &Controller{
		feed:   feed,
		logger: logger,
	}
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *Controller) HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	loc := c.feed.Current()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(locationResponse{Lat: loc.Lat, Lng: loc.Lng}); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
