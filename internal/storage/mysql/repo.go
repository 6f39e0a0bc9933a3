package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"tastemap/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- write paths (seeding only) ----

func (r *Repo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `TRUNCATE TABLE restaurants`)
	return err
}

func (r *Repo) Insert(ctx context.Context, rest domain.Restaurant) (int64, error) {
	cuisines, _ := json.Marshal(rest.Cuisines)
	photos, _ := json.Marshal(rest.Photos)
	highlights, _ := json.Marshal(rest.Highlights)

	res, err := r.db.ExecContext(ctx, insertRestaurantSQL,
		rest.Name,
		nullStr(rest.Description),
		rest.Location.Address,
		nullStr(rest.Location.Locality),
		rest.Location.City,
		rest.Location.Country,
		rest.Location.Coordinates.Lon(),
		rest.Location.Coordinates.Lat(),
		string(cuisines),
		strings.Join(rest.Cuisines, ", "),
		rest.AverageCostForTwo,
		rest.Currency,
		rest.HasOnlineDelivery,
		rest.IsDeliveringNow,
		rest.HasTableBooking,
		rest.PriceRange,
		rest.UserRating.AggregateRating,
		nullStr(rest.UserRating.RatingText),
		rest.UserRating.Votes,
		string(photos),
		nullStr(rest.FeaturedImage),
		nullStr(rest.OpeningHours),
		nullStr(rest.PhoneNumbers),
		string(highlights),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ---- read paths ----

func (r *Repo) Get(ctx context.Context, id int64) (domain.Restaurant, error) {
	row := r.db.QueryRowContext(ctx, getRestaurantSQL, id)
	rest, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	return rest, err
}

// List applies the AND-composed filters and sorts by rating descending, with
// id as a deterministic tiebreak.
func (r *Repo) List(ctx context.Context, f domain.ListFilter, pq domain.PageQuery) (domain.PageResult, error) {
	var conds []string
	var args []any

	if f.Country != "" {
		conds = append(conds, "country = ?")
		args = append(args, f.Country)
	}
	if min, max, ok := f.CostRange(); ok {
		conds = append(conds, "average_cost_for_two BETWEEN ? AND ?")
		args = append(args, min, max)
	}
	if f.Cuisine != "" {
		// exact, case-sensitive membership in the JSON cuisine array
		conds = append(conds, "JSON_CONTAINS(cuisines, JSON_QUOTE(?))")
		args = append(args, f.Cuisine)
	}

	where := ""
	if len(conds) > 0 {
		where = "\nWHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants"+where, args...).Scan(&total); err != nil {
		return domain.PageResult{}, err
	}

	query := fmt.Sprintf("SELECT%s\nFROM restaurants%s\nORDER BY aggregate_rating DESC, id ASC\nLIMIT ? OFFSET ?",
		selectColumns, where)
	rows, err := r.db.QueryContext(ctx, query, append(args, pq.Limit, pq.Offset())...)
	if err != nil {
		return domain.PageResult{}, err
	}
	items, err := collect(rows, 0)
	if err != nil {
		return domain.PageResult{}, err
	}
	return domain.PageResult{Items: items, Total: total}, nil
}

func (r *Repo) SearchText(ctx context.Context, query string, pq domain.PageQuery) (domain.PageResult, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, countTextSQL, query).Scan(&total); err != nil {
		return domain.PageResult{}, err
	}
	rows, err := r.db.QueryContext(ctx, searchTextSQL, query, query, pq.Limit, pq.Offset())
	if err != nil {
		return domain.PageResult{}, err
	}
	items, err := collect(rows, 1) // trailing score column
	if err != nil {
		return domain.PageResult{}, err
	}
	return domain.PageResult{Items: items, Total: total}, nil
}

func (r *Repo) SearchNearby(ctx context.Context, lat, lng, radiusMeters float64, pq domain.PageQuery) (domain.PageResult, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, countNearbySQL, lng, lat, radiusMeters).Scan(&total); err != nil {
		return domain.PageResult{}, err
	}
	rows, err := r.db.QueryContext(ctx, searchNearbySQL,
		lng, lat, lng, lat, radiusMeters, pq.Limit, pq.Offset())
	if err != nil {
		return domain.PageResult{}, err
	}
	items, err := collect(rows, 1) // trailing distance column
	if err != nil {
		return domain.PageResult{}, err
	}
	return domain.PageResult{Items: items, Total: total}, nil
}

func (r *Repo) SearchCuisine(ctx context.Context, foodType string, pq domain.PageQuery) (domain.PageResult, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, countCuisineSQL, foodType).Scan(&total); err != nil {
		return domain.PageResult{}, err
	}
	rows, err := r.db.QueryContext(ctx, searchCuisineSQL, foodType, pq.Limit, pq.Offset())
	if err != nil {
		return domain.PageResult{}, err
	}
	items, err := collect(rows, 0)
	if err != nil {
		return domain.PageResult{}, err
	}
	return domain.PageResult{Items: items, Total: total}, nil
}

// ---- scanning ----

type rowScanner interface{ Scan(dest ...any) error }

// scanRestaurant reads one row in selectColumns order; trailing holds the
// destinations for any extra columns (score, distance).
func scanRestaurant(s rowScanner, trailing ...any) (domain.Restaurant, error) {
	var (
		rest            domain.Restaurant
		desc, locality  sql.NullString
		lon, lat        float64
		cuisinesJSON    []byte
		ratingText      sql.NullString
		photosJSON      []byte
		featured, hours sql.NullString
		phones          sql.NullString
		highlightsJSON  []byte
	)

	dest := []any{
		&rest.ID, &rest.Name, &desc,
		&rest.Location.Address, &locality, &rest.Location.City, &rest.Location.Country,
		&lon, &lat,
		&cuisinesJSON, &rest.AverageCostForTwo, &rest.Currency,
		&rest.HasOnlineDelivery, &rest.IsDeliveringNow, &rest.HasTableBooking, &rest.PriceRange,
		&rest.UserRating.AggregateRating, &ratingText, &rest.UserRating.Votes,
		&photosJSON, &featured, &hours, &phones, &highlightsJSON,
	}
	dest = append(dest, trailing...)
	if err := s.Scan(dest...); err != nil {
		return domain.Restaurant{}, err
	}

	rest.Description = desc.String
	rest.Location.Locality = locality.String
	rest.Location.Coordinates = domain.NewGeoPoint(lon, lat)
	rest.UserRating.RatingText = ratingText.String
	rest.FeaturedImage = featured.String
	rest.OpeningHours = hours.String
	rest.PhoneNumbers = phones.String
	_ = json.Unmarshal(cuisinesJSON, &rest.Cuisines)
	_ = json.Unmarshal(photosJSON, &rest.Photos)
	_ = json.Unmarshal(highlightsJSON, &rest.Highlights)
	return rest, nil
}

func collect(rows *sql.Rows, extraCols int) ([]domain.Restaurant, error) {
	defer rows.Close()
	var out []domain.Restaurant
	for rows.Next() {
		trailing := make([]any, extraCols)
		for i := range trailing {
			trailing[i] = new(float64)
		}
		rest, err := scanRestaurant(rows, trailing...)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
