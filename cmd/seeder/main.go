package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tastemap/internal/adapters/observability"
	"tastemap/internal/shared"
	mysqlrepo "tastemap/internal/storage/mysql"
)

// Seeding has replace-all semantics: the collection is cleared, then the fixed
// sample set is inserted. Not meant to run concurrently with serving traffic.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Int("restaurants", len(shared.SampleRestaurants)).Msg("seeder starting")

	// validate the whole set before touching the table
	for _, r := range shared.SampleRestaurants {
		if err := r.Validate(); err != nil {
			log.Fatal().Str("name", r.Name).Err(err).Msg("sample restaurant invalid")
		}
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	if err := repo.Clear(ctx); err != nil {
		log.Fatal().Err(err).Msg("clear failed")
	}
	log.Info().Msg("previous data cleared")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, r := range shared.SampleRestaurants {
		r := r

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			id, err := repo.Insert(ctx, r)
			if err != nil {
				log.Warn().Str("name", r.Name).Err(err).Msg("insert failed")
				return
			}
			log.Info().Int64("id", id).Str("name", r.Name).Msg("insert ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
