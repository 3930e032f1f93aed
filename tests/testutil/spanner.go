// Package testutil contains helpers for emulator-backed integration tests.
package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
)

// SetupSpannerTest creates a test Spanner client and returns a cleanup
// function. Tests calling it are skipped unless SPANNER_EMULATOR_HOST is
// set, so the unit suite stays runnable without the emulator.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner integration test")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}
	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database path.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/local-project/instances/local-instance/databases/storefront-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()
	mutations := []*spanner.Mutation{
		spanner.Delete("reviews", spanner.AllKeys()),
		spanner.Delete("orders", spanner.AllKeys()),
		spanner.Delete("products", spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}
