package domain

import "context"

type RestaurantRepository interface {
	// Write paths (seeding only)
	Clear(ctx context.Context) error
	Insert(ctx context.Context, r Restaurant) (int64, error)

	// Read paths
	Get(ctx context.Context, id int64) (Restaurant, error)
	List(ctx context.Context, f ListFilter, pq PageQuery) (PageResult, error)
	// SearchText ranks by descending relevance over name/description/cuisines.
	SearchText(ctx context.Context, query string, pq PageQuery) (PageResult, error)
	// SearchNearby orders by ascending distance from (lat,lng) within radiusMeters.
	SearchNearby(ctx context.Context, lat, lng, radiusMeters float64, pq PageQuery) (PageResult, error)
	// SearchCuisine matches foodType as a case-insensitive substring of the
	// cuisine tags.
	SearchCuisine(ctx context.Context, foodType string, pq PageQuery) (PageResult, error)
}
