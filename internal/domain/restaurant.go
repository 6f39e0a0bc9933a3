package domain

import "fmt"

// Restaurant is the document served by every search endpoint. JSON names match
// the public API wire format.
type Restaurant struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Location          Location   `json:"location"`
	Cuisines          []string   `json:"cuisines"`
	AverageCostForTwo int        `json:"average_cost_for_two"`
	Currency          string     `json:"currency"`
	HasOnlineDelivery bool       `json:"has_online_delivery"`
	IsDeliveringNow   bool       `json:"is_delivering_now"`
	HasTableBooking   bool       `json:"has_table_booking"`
	PriceRange        int        `json:"price_range"`
	UserRating        UserRating `json:"user_rating"`
	Photos            []Photo    `json:"photos"`
	FeaturedImage     string     `json:"featured_image"`
	OpeningHours      string     `json:"opening_hours"`
	PhoneNumbers      string     `json:"phone_numbers"`
	Highlights        []string   `json:"highlights"`
}

type Location struct {
	Address     string   `json:"address"`
	Locality    string   `json:"locality"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Coordinates GeoPoint `json:"coordinates"`
}

// GeoPoint is a GeoJSON point: Coordinates is [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lon, lat}}
}

func (g GeoPoint) Lon() float64 { return g.Coordinates[0] }
func (g GeoPoint) Lat() float64 { return g.Coordinates[1] }

type UserRating struct {
	AggregateRating float64 `json:"aggregate_rating"`
	RatingText      string  `json:"rating_text"`
	Votes           int     `json:"votes"`
}

type Photo struct {
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url"`
	Caption  string `json:"caption"`
}

// Validate checks the listing invariants. The seeder refuses records that fail
// here, so the serving path can assume them.
func (r Restaurant) Validate() error {
	if r.Name == "" {
		return Validation("name is required")
	}
	if len(r.Cuisines) == 0 {
		return Validation("cuisines must be non-empty")
	}
	if r.AverageCostForTwo < 0 {
		return Validation("average_cost_for_two must be non-negative")
	}
	if r.PriceRange < 1 || r.PriceRange > 4 {
		return Validation(fmt.Sprintf("price_range %d out of range [1,4]", r.PriceRange))
	}
	if ar := r.UserRating.AggregateRating; ar < 0 || ar > 5 {
		return Validation(fmt.Sprintf("aggregate_rating %.1f out of range [0,5]", ar))
	}
	if r.UserRating.Votes < 0 {
		return Validation("votes must be non-negative")
	}
	if lon := r.Location.Coordinates.Lon(); lon < -180 || lon > 180 {
		return Validation(fmt.Sprintf("longitude %f out of range [-180,180]", lon))
	}
	if lat := r.Location.Coordinates.Lat(); lat < -90 || lat > 90 {
		return Validation(fmt.Sprintf("latitude %f out of range [-90,90]", lat))
	}
	return nil
}
