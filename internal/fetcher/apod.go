package fetcher

import (
	"context"
	"log/slog"
	"net/url"
)

// FetchAPOD retrieves NASA's Astronomy Picture of the Day. The API key from
// config is sent as a query parameter; it is the only keyed upstream.
func (f *Fetcher) FetchAPOD(ctx context.Context) (map[string]any, error) {
	slog.Info("fetching APOD data")

	params := url.Values{"api_key": {f.cfg.NASAAPIKey}}
	return f.getJSON(ctx, f.cfg.APODAPIURL, params)
}
