// Command seed loads the reference catalog and its reviews into Spanner.
// Product inserts are insert-or-update; review inserts expect an empty
// reviews table.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/artisan-storefront/internal/storage/memorystore"
	"github.com/light-bringer/artisan-storefront/internal/storage/spannerstore"
)

var databasePath = flag.String(
	"database",
	getEnvOrDefault("SPANNER_DATABASE", "projects/local-project/instances/local-instance/databases/storefront-db"),
	"Fully qualified Spanner database path",
)

func main() {
	flag.Parse()

	ctx := context.Background()

	if emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST"); emulatorHost != "" {
		log.Printf("Using Spanner emulator at %s", emulatorHost)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

func run(ctx context.Context) error {
	client, err := spanner.NewClient(ctx, *databasePath)
	if err != nil {
		return err
	}
	defer client.Close()

	store := spannerstore.New(client)

	products := memorystore.SeedProducts()
	reviews := memorystore.SeedReviews()

	muts := make([]*spanner.Mutation, 0, len(products)+len(reviews))
	for i, p := range products {
		muts = append(muts, store.InsertProductMut(p, int64(i)))
	}
	for _, r := range reviews {
		muts = append(muts, store.InsertReviewMut(r))
	}

	if _, err := client.Apply(ctx, muts); err != nil {
		return err
	}

	log.Printf("Seeded %d products and %d reviews", len(products), len(reviews))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
