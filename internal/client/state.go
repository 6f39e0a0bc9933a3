package client

import (
	"context"
	"sync"

	"tastemap/internal/app"
	"tastemap/internal/domain"
)

// Mode names the search endpoint a filter set resolves to.
type Mode string

const (
	ModeListing Mode = "listing"
	ModeText    Mode = "text"
	ModeNearby  Mode = "nearby"
)

// ModeFor applies the precedence rule: coordinates beat a text query, a text
// query beats the plain listing. Exactly one mode runs per fetch.
func ModeFor(f SearchFilters) Mode {
	if f.Lat != nil && f.Lng != nil {
		return ModeNearby
	}
	if f.Query != "" {
		return ModeText
	}
	return ModeListing
}

// Session owns one view's query state: the current filters and page. Every
// change triggers exactly one fetch. Fetches are tagged with a generation;
// a response that lost the race against a newer request is discarded instead
// of overwriting fresher state.
type Session struct {
	c     *Client
	limit int

	mu      sync.Mutex
	gen     uint64
	filters SearchFilters
	page    int

	restaurants []domain.Restaurant
	pagination  app.Pagination
}

func NewSession(c *Client, limit int) *Session {
	if limit <= 0 {
		limit = 10
	}
	return &Session{c: c, limit: limit, page: 1}
}

// Apply replaces the filters, resets to the first page, and fetches.
func (s *Session) Apply(ctx context.Context, f SearchFilters) error {
	s.mu.Lock()
	s.filters = f
	s.page = 1
	gen, filters, page := s.begin()
	s.mu.Unlock()
	return s.fetch(ctx, gen, filters, page)
}

// SetPage moves to the given page under the current filters and fetches.
func (s *Session) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	gen, filters, p := s.begin()
	s.mu.Unlock()
	return s.fetch(ctx, gen, filters, p)
}

// Refresh re-runs the current query.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	gen, filters, page := s.begin()
	s.mu.Unlock()
	return s.fetch(ctx, gen, filters, page)
}

// Results returns the last applied page of data.
func (s *Session) Results() ([]domain.Restaurant, app.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurants, s.pagination
}

// begin snapshots the state for a new fetch generation. Caller holds mu.
func (s *Session) begin() (uint64, SearchFilters, int) {
	s.gen++
	return s.gen, s.filters, s.page
}

func (s *Session) fetch(ctx context.Context, gen uint64, f SearchFilters, page int) error {
	var (
		out app.SearchPage
		err error
	)
	switch ModeFor(f) {
	case ModeNearby:
		out, err = s.c.SearchNearby(ctx, *f.Lat, *f.Lng, f.RadiusKm, page, s.limit)
	case ModeText:
		out, err = s.c.SearchText(ctx, f.Query, page, s.limit)
	default:
		out, err = s.c.Restaurants(ctx, page, s.limit, f)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// a newer fetch was issued while this one was in flight
		return nil
	}
	s.restaurants = out.Data
	s.pagination = out.Pagination
	return nil
}
