package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/spacepage/spacepage/internal/config"
)

// Open Notify asks clients to stay under one request per second; the
// politeness limiter paces every upstream call to that budget.
const (
	requestTimeout    = 15 * time.Second
	requestsPerSecond = 1
)

// Sentinel errors naming the class of a failed fetch. Every failure collapses
// to a nil payload plus one of these wrapped in the returned error.
var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	ErrDecode     = errors.New("malformed JSON body")
)

// Fetcher holds the shared HTTP client, rate limiter, and config for all
// upstream API fetchers.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     *config.Config
}

func New(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		cfg:     cfg,
	}
}

// getJSON issues a single GET request and decodes the JSON response into a
// loosely-typed map. No retries: any transport, HTTP, or decode failure
// returns a nil map and a classified error, after one diagnostic log line.
func (f *Fetcher) getJSON(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	target := endpoint
	if len(params) > 0 {
		target = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		class := classifyTransport(err)
		slog.Warn("fetch failed", "class", class, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", class, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("fetch failed", "class", ErrHTTPStatus, "url", endpoint, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %d from %s", ErrHTTPStatus, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		class := classifyTransport(err)
		slog.Warn("fetch failed", "class", class, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", class, err)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		slog.Warn("fetch failed", "class", ErrDecode, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return data, nil
}

// classifyTransport splits transport failures into the timeout and
// connection classes.
func classifyTransport(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrConnection
}
