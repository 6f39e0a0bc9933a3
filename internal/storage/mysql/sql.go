package mysql

const insertRestaurantSQL = `
INSERT INTO restaurants
  (name, description, address, locality, city, country, coords,
   cuisines, cuisines_text, average_cost_for_two, currency,
   has_online_delivery, is_delivering_now, has_table_booking, price_range,
   aggregate_rating, rating_text, votes,
   photos, featured_image, opening_hours, phone_numbers, highlights)
VALUES
  (?, ?, ?, ?, ?, ?, POINT(?, ?),
   ?, ?, ?, ?,
   ?, ?, ?, ?,
   ?, ?, ?,
   ?, ?, ?, ?, ?)
`

// Shared SELECT column list; every read query uses the same order so a single
// scan helper covers them all. Coordinates come back as ST_X=lon, ST_Y=lat.
const selectColumns = `
  id, name, description, address, locality, city, country,
  ST_X(coords), ST_Y(coords),
  cuisines, average_cost_for_two, currency,
  has_online_delivery, is_delivering_now, has_table_booking, price_range,
  aggregate_rating, rating_text, votes,
  photos, featured_image, opening_hours, phone_numbers, highlights`

const getRestaurantSQL = `SELECT` + selectColumns + `
FROM restaurants
WHERE id = ?`

// Natural-language FULLTEXT search over name/description/cuisines. The MATCH
// expression doubles as the relevance score, so ordering by it gives
// descending relevance.
const searchTextSQL = `SELECT` + selectColumns + `,
  MATCH(name, description, cuisines_text) AGAINST (? IN NATURAL LANGUAGE MODE) AS score
FROM restaurants
WHERE MATCH(name, description, cuisines_text) AGAINST (? IN NATURAL LANGUAGE MODE)
ORDER BY score DESC
LIMIT ? OFFSET ?`

const countTextSQL = `
SELECT COUNT(*) FROM restaurants
WHERE MATCH(name, description, cuisines_text) AGAINST (? IN NATURAL LANGUAGE MODE)`

// Args: lon, lat (distance expr), lon, lat, radiusMeters (predicate), limit, offset.
const searchNearbySQL = `SELECT` + selectColumns + `,
  ST_Distance_Sphere(coords, POINT(?, ?)) AS distance
FROM restaurants
WHERE ST_Distance_Sphere(coords, POINT(?, ?)) <= ?
ORDER BY distance ASC, id ASC
LIMIT ? OFFSET ?`

const countNearbySQL = `
SELECT COUNT(*) FROM restaurants
WHERE ST_Distance_Sphere(coords, POINT(?, ?)) <= ?`

const searchCuisineWhere = `
WHERE LOWER(cuisines_text) LIKE CONCAT('%', LOWER(?), '%')`

const searchCuisineSQL = `SELECT` + selectColumns + `
FROM restaurants` + searchCuisineWhere + `
ORDER BY aggregate_rating DESC, id ASC
LIMIT ? OFFSET ?`

const countCuisineSQL = `SELECT COUNT(*) FROM restaurants` + searchCuisineWhere
