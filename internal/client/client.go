// internal/client/client.go
package client

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tastemap/internal/app"
	"tastemap/internal/domain"
)

// SearchFilters is the transient query state a caller owns. It is serialized
// into request parameters per call; nothing here is shared or persisted.
type SearchFilters struct {
	Query    string
	Country  string
	Cuisines []string
	MinCost  int
	MaxCost  int
	Lat, Lng *float64
	RadiusKm float64
}

// ImageSearchResult is the image-mode envelope: a normal search page plus the
// stored image path and the food-type label that was matched.
type ImageSearchResult struct {
	app.SearchPage
	UploadedImage string `json:"uploadedImage"`
	DetectedFood  string `json:"detectedFood"`
}

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ---- Public API ----

func (c *Client) Restaurants(ctx context.Context, page, limit int, f SearchFilters) (app.SearchPage, error) {
	q := pageParams(page, limit)
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.MinCost > 0 {
		q.Set("minCost", strconv.Itoa(f.MinCost))
	}
	if f.MaxCost > 0 {
		q.Set("maxCost", strconv.Itoa(f.MaxCost))
	}
	if len(f.Cuisines) > 0 {
		q.Set("cuisine", f.Cuisines[0])
	}
	var out app.SearchPage
	return out, c.getJSON(ctx, "/api/restaurants", q, &out)
}

func (c *Client) Restaurant(ctx context.Context, id int64) (domain.Restaurant, error) {
	var out domain.Restaurant
	return out, c.getJSON(ctx, fmt.Sprintf("/api/restaurants/%d", id), nil, &out)
}

func (c *Client) SearchText(ctx context.Context, query string, page, limit int) (app.SearchPage, error) {
	q := pageParams(page, limit)
	q.Set("q", query)
	var out app.SearchPage
	return out, c.getJSON(ctx, "/api/search/text", q, &out)
}

func (c *Client) SearchNearby(ctx context.Context, lat, lng, radiusKm float64, page, limit int) (app.SearchPage, error) {
	q := pageParams(page, limit)
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if radiusKm > 0 {
		q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	}
	var out app.SearchPage
	return out, c.getJSON(ctx, "/api/search/nearby", q, &out)
}

// SearchImage uploads the image as multipart form data. The request body is
// not replayable, so this path does a single attempt without retries.
func (c *Client) SearchImage(ctx context.Context, filename string, image io.Reader, foodType string, page, limit int) (ImageSearchResult, error) {
	var out ImageSearchResult

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("foodImage", filename)
	if err != nil {
		return out, err
	}
	if _, err := io.Copy(fw, image); err != nil {
		return out, err
	}
	if foodType != "" {
		if err := mw.WriteField("foodType", foodType); err != nil {
			return out, err
		}
	}
	if err := mw.Close(); err != nil {
		return out, err
	}

	if err := c.rl.Wait(ctx); err != nil {
		return out, err
	}
	u := c.base + "/api/search/image?" + pageParams(page, limit).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return out, statusError(resp)
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

// ---- Internals ----

func pageParams(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// getJSON performs a GET with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring Retry-After.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "tastemap-client/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusBadRequest, http.StatusNotFound:
			err := statusError(resp)
			resp.Body.Close()
			return err

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// statusError decodes a problem+json body into the matching domain error.
func statusError(resp *http.Response) error {
	var p struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&p)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		if p.Detail == "" {
			p.Detail = "bad request"
		}
		return domain.Validation(p.Detail)
	}
	return fmt.Errorf("remote %d: %s", resp.StatusCode, p.Detail)
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
