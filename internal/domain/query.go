package domain

// ListFilter narrows the plain listing mode. Every field is optional; present
// filters are AND-composed.
type ListFilter struct {
	Country string
	// Cost bounds are inclusive and only active when both are set.
	MinCost, MaxCost *int
	// Cuisine matches by exact, case-sensitive membership in the cuisine set.
	Cuisine string
}

func (f ListFilter) CostRange() (min, max int, ok bool) {
	if f.MinCost == nil || f.MaxCost == nil {
		return 0, 0, false
	}
	return *f.MinCost, *f.MaxCost, true
}

// NearbyQuery describes a proximity search. Lat/Lng are pointers so "absent"
// stays distinguishable from zero (0,0 is a valid point in the Gulf of Guinea).
type NearbyQuery struct {
	Lat, Lng *float64
	RadiusKm float64
}

// PageQuery is the requested pagination window.
type PageQuery struct {
	Page  int // 1-based
	Limit int
}

func (p PageQuery) Offset() int { return (p.Page - 1) * p.Limit }

// PageResult is one window of matches plus the total count under the same
// predicate. The count lives here, next to the data, so stores that can only
// estimate it stay free to do so.
type PageResult struct {
	Items []Restaurant
	Total int
}
