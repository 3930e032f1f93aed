// Package spannerstore implements the Store contract on Cloud Spanner. It
// preserves the reference semantics of the in-memory store exactly: stable
// catalog ordering, case-sensitive category filtering, case-insensitive
// search, and an atomic review insert + aggregate recompute.
package spannerstore

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/models/m_order"
	"github.com/light-bringer/artisan-storefront/internal/models/m_product"
	"github.com/light-bringer/artisan-storefront/internal/models/m_review"
	"github.com/light-bringer/artisan-storefront/internal/pkg/committer"
)

// Store is a Spanner-backed Store implementation.
type Store struct {
	client    *spanner.Client
	committer *committer.Committer

	products *m_product.Model
	reviews  *m_review.Model
	orders   *m_order.Model
}

var _ contracts.Store = (*Store)(nil)

// New creates a Store on top of an existing Spanner client.
func New(client *spanner.Client) *Store {
	return &Store{
		client:    client,
		committer: committer.NewCommitter(client),
		products:  m_product.NewModel(),
		reviews:   m_review.NewModel(),
		orders:    m_order.NewModel(),
	}
}
