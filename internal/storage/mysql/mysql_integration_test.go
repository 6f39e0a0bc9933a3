//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"tastemap/internal/domain"
	"tastemap/internal/shared"
	mysqlrepo "tastemap/internal/storage/mysql"
)

// ---------- helpers ----------

func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("migrations dir %s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=tastemap",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "tastemap")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func seed(t *testing.T, repo *mysqlrepo.Repo) map[string]int64 {
	t.Helper()
	ctx := context.Background()
	ids := make(map[string]int64, len(shared.SampleRestaurants))
	for _, r := range shared.SampleRestaurants {
		id, err := repo.Insert(ctx, r)
		if err != nil {
			t.Fatalf("insert %q: %v", r.Name, err)
		}
		ids[r.Name] = id
	}
	return ids
}

func names(items []domain.Restaurant) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.Name
	}
	return out
}

// ---------- the tests ----------

func TestRepo_MySQL_SeedAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()
	ids := seed(t, repo)
	pq := domain.PageQuery{Page: 1, Limit: 10}

	t.Run("get round-trips the document", func(t *testing.T) {
		got, err := repo.Get(ctx, ids["Spice Delight"])
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != "Spice Delight" || got.Location.City != "Mumbai" || got.Location.Country != "India" {
			t.Fatalf("unexpected restaurant: %+v", got)
		}
		if got.Location.Coordinates.Lon() != 72.8777 || got.Location.Coordinates.Lat() != 19.0760 {
			t.Fatalf("coordinates lost: %+v", got.Location.Coordinates)
		}
		if len(got.Cuisines) != 3 || got.Cuisines[1] != "Curry" {
			t.Fatalf("cuisines lost: %v", got.Cuisines)
		}
		if len(got.Photos) == 0 || got.Photos[0].URL == "" {
			t.Fatalf("photos lost: %+v", got.Photos)
		}
		if got.UserRating.AggregateRating != 4.5 || got.UserRating.Votes != 1245 {
			t.Fatalf("rating lost: %+v", got.UserRating)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, 999999)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err = %v, want not found", err)
		}
	})

	t.Run("listing sorts by rating descending", func(t *testing.T) {
		res, err := repo.List(ctx, domain.ListFilter{}, domain.PageQuery{Page: 1, Limit: 5})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if res.Total != 10 {
			t.Fatalf("total = %d, want 10", res.Total)
		}
		want := []string{"Sushi Master", "Mediterranean Oasis", "Pasta Paradise", "Tandoori Nights", "Thai Spice"}
		got := names(res.Items)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("second page continues the order", func(t *testing.T) {
		res, err := repo.List(ctx, domain.ListFilter{}, domain.PageQuery{Page: 2, Limit: 5})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(res.Items) != 5 || res.Total != 10 {
			t.Fatalf("items=%d total=%d", len(res.Items), res.Total)
		}
		if res.Items[0].Name != "Spice Delight" {
			t.Fatalf("page 2 starts with %q", res.Items[0].Name)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		res, err := repo.List(ctx, domain.ListFilter{}, domain.PageQuery{Page: 5, Limit: 5})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 10 {
			t.Fatalf("items=%d total=%d, want 0/10", len(res.Items), res.Total)
		}
	})

	t.Run("country filter", func(t *testing.T) {
		res, err := repo.List(ctx, domain.ListFilter{Country: "India"}, pq)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("total = %d, want 2 (got %v)", res.Total, names(res.Items))
		}
	})

	t.Run("cost range filter is inclusive", func(t *testing.T) {
		min, max := 40, 400
		res, err := repo.List(ctx, domain.ListFilter{MinCost: &min, MaxCost: &max}, pq)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		// 60, 40, 400, 50, 55, 200 fall inside [40,400]
		if res.Total != 6 {
			t.Fatalf("total = %d, want 6 (got %v)", res.Total, names(res.Items))
		}
	})

	t.Run("cuisine filter matches array membership", func(t *testing.T) {
		res, err := repo.List(ctx, domain.ListFilter{Cuisine: "Curry"}, pq)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if res.Total != 3 {
			t.Fatalf("total = %d, want 3 (got %v)", res.Total, names(res.Items))
		}
	})

	t.Run("text search ranks by relevance", func(t *testing.T) {
		res, err := repo.SearchText(ctx, "sushi", pq)
		if err != nil {
			t.Fatalf("SearchText: %v", err)
		}
		if res.Total != 1 || res.Items[0].Name != "Sushi Master" {
			t.Fatalf("got %v (total %d), want Sushi Master", names(res.Items), res.Total)
		}
	})

	t.Run("text search across fields", func(t *testing.T) {
		res, err := repo.SearchText(ctx, "pasta", pq)
		if err != nil {
			t.Fatalf("SearchText: %v", err)
		}
		if res.Total < 1 || res.Items[0].Name != "Pasta Paradise" {
			t.Fatalf("got %v, want Pasta Paradise first", names(res.Items))
		}
	})

	t.Run("nearby within tight radius", func(t *testing.T) {
		// 1 km around the Mumbai sample
		res, err := repo.SearchNearby(ctx, 19.0760, 72.8777, 1000, pq)
		if err != nil {
			t.Fatalf("SearchNearby: %v", err)
		}
		if res.Total != 1 || res.Items[0].Name != "Spice Delight" {
			t.Fatalf("got %v, want only Spice Delight", names(res.Items))
		}
	})

	t.Run("nearby orders by distance", func(t *testing.T) {
		// 1500 km around Mumbai covers New Delhi and nothing else
		res, err := repo.SearchNearby(ctx, 19.0760, 72.8777, 1500_000, pq)
		if err != nil {
			t.Fatalf("SearchNearby: %v", err)
		}
		want := []string{"Spice Delight", "Tandoori Nights"}
		got := names(res.Items)
		if res.Total != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("cuisine substring match is case-insensitive", func(t *testing.T) {
		res, err := repo.SearchCuisine(ctx, "SUSHI", pq)
		if err != nil {
			t.Fatalf("SearchCuisine: %v", err)
		}
		if res.Total != 1 || res.Items[0].Name != "Sushi Master" {
			t.Fatalf("got %v, want Sushi Master", names(res.Items))
		}
	})

	t.Run("clear empties the store", func(t *testing.T) {
		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		res, err := repo.List(ctx, domain.ListFilter{}, pq)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if res.Total != 0 || len(res.Items) != 0 {
			t.Fatalf("store not empty: total=%d", res.Total)
		}
	})
}
