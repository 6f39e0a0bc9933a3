package httpserver

import (
	"net/url"
	"strconv"

	"tastemap/internal/domain"
)

const (
	defaultLimit = 10
	// maxLimit bounds response size; the upstream behavior was unbounded.
	maxLimit = 100
)

// ParsePageQuery normalizes page/limit. Absent, non-numeric, or non-positive
// values fall back to page=1, limit=10; limit is clamped to maxLimit.
func ParsePageQuery(q url.Values) domain.PageQuery {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return domain.PageQuery{Page: page, Limit: limit}
}

// ParseListFilter extracts the listing filters. The cost range only activates
// when both bounds are present and numeric; a lone bound is a no-op.
func ParseListFilter(q url.Values) domain.ListFilter {
	f := domain.ListFilter{
		Country: q.Get("country"),
		Cuisine: q.Get("cuisine"),
	}
	if q.Get("minCost") != "" && q.Get("maxCost") != "" {
		min, minErr := strconv.Atoi(q.Get("minCost"))
		max, maxErr := strconv.Atoi(q.Get("maxCost"))
		if minErr == nil && maxErr == nil {
			f.MinCost, f.MaxCost = &min, &max
		}
	}
	return f
}

// ParseNearbyQuery reads lat/lng/radius. Missing or malformed coordinates stay
// nil; the service turns that into a validation error.
func ParseNearbyQuery(q url.Values) domain.NearbyQuery {
	var nq domain.NearbyQuery
	if v := q.Get("lat"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			nq.Lat = &lat
		}
	}
	if v := q.Get("lng"); v != "" {
		if lng, err := strconv.ParseFloat(v, 64); err == nil {
			nq.Lng = &lng
		}
	}
	if v := q.Get("radius"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			nq.RadiusKm = r
		}
	}
	return nq
}
