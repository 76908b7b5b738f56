package location

import (
	"context"

	"kazhicho/internal/push"
)

// RunUpdater applies location events from the push channel to the shared
// feed until ctx is cancelled or the broker closes. Sessions read the feed;
// only this updater writes it.
func RunUpdater(ctx context.Context, broker *push.Broker, feed *Feed) {
	events, cancel := broker.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if loc, ok := ev.(push.LocationEvent); ok {
				// Invalid coordinates are logged and dropped by the feed.
				_ = feed.Update(loc.Lat, loc.Lng)
			}
		}
	}
}
