package app

import (
	"context"
	"math"
	"strings"

	"tastemap/internal/domain"
)

// DefaultRadiusKm is applied when a nearby search omits the radius.
const DefaultRadiusKm = 3

// Pagination is the shared metadata block of every search response.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// SearchPage is the envelope returned by all four search modes.
type SearchPage struct {
	Data       []domain.Restaurant `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type SearchService struct {
	repo domain.RestaurantRepository
}

func NewSearchService(r domain.RestaurantRepository) *SearchService {
	return &SearchService{repo: r}
}

func (s *SearchService) Get(ctx context.Context, id int64) (domain.Restaurant, error) {
	return s.repo.Get(ctx, id)
}

// List returns the filtered listing sorted by aggregate rating descending.
func (s *SearchService) List(ctx context.Context, f domain.ListFilter, pq domain.PageQuery) (SearchPage, error) {
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return SearchPage{}, err
	}
	return page(res, pq), nil
}

// SearchText runs a relevance-ranked search over name, description, and
// cuisines. An empty query fails before the store is touched.
func (s *SearchService) SearchText(ctx context.Context, query string, pq domain.PageQuery) (SearchPage, error) {
	if strings.TrimSpace(query) == "" {
		return SearchPage{}, domain.Validation("search query is required")
	}
	res, err := s.repo.SearchText(ctx, query, pq)
	if err != nil {
		return SearchPage{}, err
	}
	return page(res, pq), nil
}

// SearchNearby returns restaurants within the radius, closest first. Radius
// defaults to 3 km and is converted to meters for the distance predicate.
func (s *SearchService) SearchNearby(ctx context.Context, q domain.NearbyQuery, pq domain.PageQuery) (SearchPage, error) {
	if q.Lat == nil || q.Lng == nil {
		return SearchPage{}, domain.Validation("latitude and longitude are required")
	}
	radiusKm := q.RadiusKm
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	res, err := s.repo.SearchNearby(ctx, *q.Lat, *q.Lng, radiusKm*1000, pq)
	if err != nil {
		return SearchPage{}, err
	}
	return page(res, pq), nil
}

// SearchCuisine backs the image search: foodType is matched as a
// case-insensitive substring of each restaurant's cuisine tags.
func (s *SearchService) SearchCuisine(ctx context.Context, foodType string, pq domain.PageQuery) (SearchPage, error) {
	if foodType == "" {
		foodType = "general"
	}
	res, err := s.repo.SearchCuisine(ctx, foodType, pq)
	if err != nil {
		return SearchPage{}, err
	}
	return page(res, pq), nil
}

func page(res domain.PageResult, pq domain.PageQuery) SearchPage {
	items := res.Items
	if items == nil {
		items = []domain.Restaurant{} // marshal as [], never null
	}
	return SearchPage{
		Data: items,
		Pagination: Pagination{
			Total: res.Total,
			Page:  pq.Page,
			Pages: int(math.Ceil(float64(res.Total) / float64(pq.Limit))),
		},
	}
}
