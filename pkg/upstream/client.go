package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/trovekit/trove/pkg/httputil"
)

const httpTimeout = 10 * time.Second

// Default endpoints for the classifier source of truth.
const (
	DefaultListURL    = "https://pypi.org/pypi?%3Aaction=list_classifiers"
	DefaultVersionURL = "https://pypi.org/pypi/trove-classifiers/json"
)

var (
	// ErrNotFound is returned when an upstream resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Snapshot is one complete upstream state of the classifier catalog: the
// full tag list plus the version label of the pypa/trove-classifiers release
// it came from.
type Snapshot struct {
	Version string   `json:"version"` // upstream package version, e.g. "2024.10.16"
	Tags    []string `json:"tags"`    // every valid classifier, sorted
}

// Client fetches classifier snapshots from PyPI with caching and automatic
// retries. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	cache      *httputil.Cache
	listURL    string
	versionURL string
}

// NewClient creates an upstream client backed by the given cache. The cache
// controls how long fetched snapshots are reused between generator runs;
// pass a zero-TTL cache to always hit the network.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		http:       &http.Client{Timeout: httpTimeout},
		cache:      cache.Namespace("upstream:"),
		listURL:    DefaultListURL,
		versionURL: DefaultVersionURL,
	}
}

// NewClientWithURLs creates a client against non-default endpoints, for
// configs that point at a mirror.
func NewClientWithURLs(cache *httputil.Cache, listURL, versionURL string) *Client {
	c := NewClient(cache)
	c.listURL = listURL
	c.versionURL = versionURL
	return c
}

// FetchSnapshot retrieves the current catalog state from PyPI.
//
// If refresh is true the cache is bypassed and both endpoints are fetched
// fresh. The returned snapshot's tags are sorted. Deduplication is not
// applied: upstream guarantees uniqueness, and the generator validates it.
//
// Returns [ErrNotFound] if an endpoint doesn't exist and [ErrNetwork] for
// transport failures that survived retrying.
func (c *Client) FetchSnapshot(ctx context.Context, refresh bool) (*Snapshot, error) {
	var snap Snapshot
	err := c.cached(ctx, "snapshot", refresh, &snap, func() error {
		return c.fetch(ctx, &snap)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) fetch(ctx context.Context, snap *Snapshot) error {
	version, err := c.fetchVersion(ctx)
	if err != nil {
		return err
	}
	tags, err := c.fetchTags(ctx)
	if err != nil {
		return err
	}
	*snap = Snapshot{Version: version, Tags: tags}
	return nil
}

func (c *Client) fetchVersion(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.versionURL)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: trove-classifiers package", err)
		}
		return "", err
	}
	defer body.Close()

	var data struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return "", err
	}
	if data.Info.Version == "" {
		return "", fmt.Errorf("%w: empty version in trove-classifiers metadata", ErrNetwork)
	}
	return data.Info.Version, nil
}

func (c *Client) fetchTags(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.listURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	var tags []string
	for line := range strings.Lines(string(raw)) {
		if tag := strings.TrimRight(line, "\r\n"); tag != "" {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags, nil
}

// cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
func (c *Client) cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			return nil
		}
	}
	if err := httputil.Retry(ctx, fetch); err != nil {
		return err
	}
	_ = c.cache.Set(key, v)
	return nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/plain, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Keep err in the chain so callers can still match timeouts.
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %w", ErrNetwork, err)}
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
