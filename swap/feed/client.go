package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/dugiahuy/pave-swap/swap/model"
)

const DefaultURL = "https://interview.switcheo.com/prices.json"

// DefaultTimeout bounds a shared fetch when the HTTP client has no timeout.
const DefaultTimeout = 10 * time.Second

// ErrMalformed is returned when the feed answers with something that is not a
// JSON array of price records.
var ErrMalformed = errors.New("malformed price feed")

// Client reads the public price feed. It is safe for concurrent use; fetches
// running at the same time share one request.
type Client struct {
	URL        string
	HTTPClient *http.Client

	group singleflight.Group
}

func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTPClient: httpClient}
}

// FetchPrices returns every record of the feed in feed order. Records are not
// filtered here apart from dropping the ones without a currency symbol.
//
// The request may be shared with other callers, so it runs detached from ctx
// under the client's own timeout; ctx only bounds how long this caller waits.
func (c *Client) FetchPrices(ctx context.Context) ([]model.PriceObservation, error) {
	ch := c.group.DoChan(c.URL, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.sharedTimeout())
		defer cancel()
		return c.fetch(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]model.PriceObservation)), nil
	}
}

func (c *Client) sharedTimeout() time.Duration {
	if c.HTTPClient.Timeout > 0 {
		return c.HTTPClient.Timeout
	}
	return DefaultTimeout
}

func (c *Client) fetch(ctx context.Context) ([]model.PriceObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", model.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", model.ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", model.ErrFeedUnavailable, err)
	}

	return Parse(body)
}

// Parse normalizes a feed body. A non-numeric price becomes 0 and an
// unparsable date the zero time; both are left for the catalog builder to
// judge.
func Parse(body []byte) ([]model.PriceObservation, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: not a JSON array", ErrMalformed)
	}

	records := root.Array()
	observations := make([]model.PriceObservation, 0, len(records))
	for _, record := range records {
		currency := record.Get("currency").String()
		if currency == "" {
			continue
		}
		observations = append(observations, model.PriceObservation{
			Asset:      currency,
			Price:      record.Get("price").Float(),
			ObservedAt: parseDate(record.Get("date").String()),
		})
	}
	return observations, nil
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
