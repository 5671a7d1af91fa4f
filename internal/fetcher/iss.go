package fetcher

import (
	"context"
	"log/slog"
)

// FetchISSLocation retrieves the live ISS coordinates from Open Notify.
func (f *Fetcher) FetchISSLocation(ctx context.Context) (map[string]any, error) {
	slog.Info("fetching ISS location data")

	return f.getJSON(ctx, f.cfg.ISSAPIURL, nil)
}
