package edr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultBaseURL is the GFS 0.5deg single-layer EDR collection.
	DefaultBaseURL = "https://climathon.iblsoft.com/data/gfs-0.5deg/edr/collections/single-layer"

	// DefaultTimeout bounds every request to the provider.
	DefaultTimeout = 15 * time.Second

	// timeLayout is the temporal axis format used by the collection.
	timeLayout = "2006-01-02T15:04:05Z"

	// extentTolerance is how far outside the requested window the nearest
	// forecast step may lie and still be used.
	extentTolerance = 5 * time.Hour

	cacheSize = 256
)

// Client queries an OGC EDR collection for point forecasts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, map[string]ParameterValue]
}

// NewClient creates a new EDR client. An empty baseURL selects the default
// collection.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cache, _ := lru.New[string, map[string]ParameterValue](cacheSize)
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

// FetchForecast returns parameter values for the given point and window.
// The activity hint selects which parameters are requested. Returns
// ErrUnavailable when the window has no usable forecast steps.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64, from, to time.Time, activityHint string) (map[string]ParameterValue, error) {
	steps, err := c.coveredSteps(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrUnavailable
	}

	params := SelectParameters(activityHint)

	query := c.positionURL(lat, lon, steps, params)
	if cached, ok := c.cache.Get(query); ok {
		return cached, nil
	}

	var doc coverageCollection
	if err := c.getJSON(ctx, query, &doc); err != nil {
		return nil, err
	}

	values := make(map[string]ParameterValue, len(params))
	for _, cov := range doc.Coverages {
		for name, rng := range cov.Ranges {
			if len(rng.Values) == 0 {
				continue
			}
			if _, exists := values[name]; exists {
				continue // keep the earliest step per parameter
			}
			pv := ParameterValue{
				Description: Catalog[name],
				Value:       rng.Values[0],
			}
			if meta, ok := doc.Parameters[name]; ok {
				pv.Unit = meta.Unit.Symbol
			}
			values[name] = pv
		}
	}

	c.cache.Add(query, values)
	return values, nil
}

// coveredSteps intersects [from, to] with the collection's temporal extent.
// When the intersection is empty, the nearest steps within extentTolerance of
// either bound are used instead.
func (c *Client) coveredSteps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var doc collectionDoc
	if err := c.getJSON(ctx, c.baseURL, &doc); err != nil {
		return nil, err
	}

	available := make([]time.Time, 0, len(doc.Extent.Temporal.Values))
	for _, raw := range doc.Extent.Temporal.Values {
		t, err := time.Parse(timeLayout, raw)
		if err != nil {
			continue
		}
		available = append(available, t)
	}
	if len(available) == 0 {
		return nil, ErrUnavailable
	}

	var steps []time.Time
	for _, t := range available {
		if !t.Before(from) && !t.After(to) {
			steps = append(steps, t)
		}
	}
	if len(steps) > 0 {
		return steps, nil
	}

	if nearest := closestTo(available, from); absDuration(nearest.Sub(from)) < extentTolerance {
		steps = append(steps, nearest)
	}
	if nearest := closestTo(available, to); absDuration(nearest.Sub(to)) < extentTolerance {
		if len(steps) == 0 || !steps[0].Equal(nearest) {
			steps = append(steps, nearest)
		}
	}
	return steps, nil
}

func (c *Client) positionURL(lat, lon float64, steps []time.Time, params []string) string {
	stamps := make([]string, len(steps))
	for i, t := range steps {
		stamps[i] = t.UTC().Format(timeLayout)
	}
	return fmt.Sprintf("%s/position?coords=%s&datetime=%s&parameter-name=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("POINT(%g %g)", lat, lon)),
		url.QueryEscape(strings.Join(stamps, ",")),
		url.QueryEscape(strings.Join(params, ",")),
	)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("edr: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("edr: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("edr: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("edr: failed to decode response: %w", err)
	}
	return nil
}

func closestTo(values []time.Time, target time.Time) time.Time {
	closest := values[0]
	for _, v := range values[1:] {
		if absDuration(v.Sub(target)) < absDuration(closest.Sub(target)) {
			closest = v
		}
	}
	return closest
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
