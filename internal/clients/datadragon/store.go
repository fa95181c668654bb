package datadragon

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/repositories/ddcache"
)

// maxDocumentSize bounds a single fetched document; champion.json is ~1MB
const maxDocumentSize = 32 << 20

// Fetcher performs one GET and returns the body
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches over net/http
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given request timeout
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch issues a GET. Transport failures and non-2xx statuses are Unavailable.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid url %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.FromContext(ctxErr)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Unavailablef("fetch %s: unexpected status %s", url, resp.Status).
			WithMeta("status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", url)
	}

	return body, nil
}

// StoreConfig holds the dependencies of a Store
type StoreConfig struct {
	Repository ddcache.Repository
	Fetcher    Fetcher
}

// Validate ensures all required dependencies are provided
func (c *StoreConfig) Validate() error {
	if c.Repository == nil {
		return errors.InvalidArgument("repository is required")
	}
	if c.Fetcher == nil {
		return errors.InvalidArgument("fetcher is required")
	}
	return nil
}

// Store is a read-through cache in front of Data Dragon
type Store struct {
	repo    ddcache.Repository
	fetcher Fetcher
}

// NewStore creates a store
func NewStore(cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Store{repo: cfg.Repository, fetcher: cfg.Fetcher}, nil
}

// GetOrRequest returns the document stored under key. On a miss it fetches
// url exactly once, requires a JSON body, stores it and returns it. Fetch
// failures are returned as is and nothing is stored.
func (s *Store) GetOrRequest(ctx context.Context, key ddcache.CacheKey, url string) ([]byte, error) {
	got, err := s.repo.Get(ctx, ddcache.GetInput{Key: key})
	if err == nil {
		slog.Debug("Data Dragon cache hit", "key", key.String())
		return got.Data, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to read cache for %s", key)
	}

	slog.Info("Fetching Data Dragon document", "url", url)
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.DataLossf("response from %s is not JSON", url)
	}

	if _, err := s.repo.Put(ctx, ddcache.PutInput{Key: key, Data: body}); err != nil {
		return nil, errors.Wrapf(err, "failed to cache %s", key)
	}

	return body, nil
}

// Clear empties the underlying cache
func (s *Store) Clear(ctx context.Context) (int, error) {
	out, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear cache")
	}
	return out.Removed, nil
}
