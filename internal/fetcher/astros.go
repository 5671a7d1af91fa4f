package fetcher

import (
	"context"
	"log/slog"
)

// FetchPeopleInSpace retrieves Open Notify's list of everyone currently in
// orbit, with the craft each person is aboard.
func (f *Fetcher) FetchPeopleInSpace(ctx context.Context) (map[string]any, error) {
	slog.Info("fetching people in space data")

	return f.getJSON(ctx, f.cfg.PeopleAPIURL, nil)
}
