package spannerstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/models/m_product"
)

// ListProducts returns the full catalog in seeded position order.
func (s *Store) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.queryProducts(ctx, spanner.Statement{
		SQL: "SELECT " + productColumnList + " FROM products ORDER BY position",
	})
}

// GetProduct looks a product up by id.
func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row, err := s.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{id}, m_product.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return productDataToDomain(&data), nil
}

// ListProductsByCategory filters by exact category match. Spanner string
// comparison is case-sensitive, matching the reference semantics.
func (s *Store) ListProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.queryProducts(ctx, spanner.Statement{
		SQL:    "SELECT " + productColumnList + " FROM products WHERE category = @category ORDER BY position",
		Params: map[string]interface{}{"category": category},
	})
}

// ListFeaturedProducts filters on the featured flag.
func (s *Store) ListFeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.queryProducts(ctx, spanner.Statement{
		SQL: "SELECT " + productColumnList + " FROM products WHERE featured ORDER BY position",
	})
}

// SearchProducts loads the catalog in stable order and applies the domain
// matcher, so search semantics (case-insensitive substring over name,
// description, or category; empty query matches all) are byte-identical to
// the reference backend rather than approximated with SQL LIKE escaping.
func (s *Store) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	all, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Product, 0, len(all))
	for _, p := range all {
		if p.MatchesQuery(query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

var productColumnList = joinColumns(m_product.AllColumns)

func (s *Store) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*domain.Product, error) {
	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, productDataToDomain(&data))
	}
	return products, nil
}

func productDataToDomain(data *m_product.Data) *domain.Product {
	p := &domain.Product{
		ID:          data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Price:       domain.FromCents(data.PriceCents),
		Image:       data.Image,
		Category:    data.Category,
		Rating:      data.Rating,
		ReviewCount: int(data.ReviewCount),
		InStock:     data.InStock,
		Featured:    data.Featured,
	}
	if data.OriginalPriceCents.Valid {
		p.OriginalPrice = domain.FromCents(data.OriginalPriceCents.Int64)
	}
	return p
}

// ProductDomainToData converts a catalog record for insertion. Position
// fixes the record's place in the stable listing order.
func ProductDomainToData(p *domain.Product, position int64) *m_product.Data {
	data := &m_product.Data{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.Price.Cents(),
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating,
		ReviewCount: int64(p.ReviewCount),
		InStock:     p.InStock,
		Featured:    p.Featured,
		Position:    position,
	}
	if p.OriginalPrice != nil {
		data.OriginalPriceCents = spanner.NullInt64{Int64: p.OriginalPrice.Cents(), Valid: true}
	}
	return data
}

// InsertProductMut builds an insert mutation for seeding tools.
func (s *Store) InsertProductMut(p *domain.Product, position int64) *spanner.Mutation {
	return s.products.InsertMut(ProductDomainToData(p, position))
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
