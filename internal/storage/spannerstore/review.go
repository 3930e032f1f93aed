package spannerstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/models/m_product"
	"github.com/light-bringer/artisan-storefront/internal/models/m_review"
)

var reviewColumnList = joinColumns(m_review.AllColumns)

// ListReviews returns a product's reviews newest first. An unknown product
// yields an empty slice.
func (s *Store) ListReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + reviewColumnList + " FROM reviews " +
			"WHERE product_id = @product_id ORDER BY created_at DESC",
		Params: map[string]interface{}{"product_id": productID},
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	reviews := make([]*domain.Review, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews: %w", err)
		}

		var data m_review.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse review: %w", err)
		}
		reviews = append(reviews, reviewDataToDomain(&data))
	}
	return reviews, nil
}

// CreateReview inserts the review and recomputes the product's aggregate
// rating inside one read-write transaction, mirroring the reference
// backend's single critical section. Reads inside the transaction do not
// observe buffered writes, so the new rating is folded in by hand.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	return s.committer.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		_, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{review.ProductID}, []string{m_product.ProductID})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("failed to check product existence: %w", err)
		}

		stmt := spanner.Statement{
			SQL:    "SELECT rating FROM reviews WHERE product_id = @product_id",
			Params: map[string]interface{}{"product_id": review.ProductID},
		}
		iter := txn.Query(ctx, stmt)
		defer iter.Stop()

		ratings := []int{review.Rating}
		for {
			row, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read existing ratings: %w", err)
			}
			var r int64
			if err := row.Columns(&r); err != nil {
				return fmt.Errorf("failed to parse rating: %w", err)
			}
			ratings = append(ratings, int(r))
		}

		rating, count := domain.AggregateRating(ratings)

		return txn.BufferWrite([]*spanner.Mutation{
			s.reviews.InsertMut(reviewDomainToData(review)),
			s.products.UpdateAggregateMut(review.ProductID, rating, int64(count)),
		})
	})
}

// InsertReviewMut builds an insert mutation for seeding tools. It does not
// touch the product aggregate.
func (s *Store) InsertReviewMut(review *domain.Review) *spanner.Mutation {
	return s.reviews.InsertMut(reviewDomainToData(review))
}

func reviewDataToDomain(data *m_review.Data) *domain.Review {
	return &domain.Review{
		ID:           data.ReviewID,
		ProductID:    data.ProductID,
		ReviewerName: data.ReviewerName,
		Rating:       int(data.Rating),
		Comment:      data.Comment,
		Verified:     data.Verified,
		Helpful:      int(data.Helpful),
		CreatedAt:    data.CreatedAt,
	}
}

func reviewDomainToData(review *domain.Review) *m_review.Data {
	return &m_review.Data{
		ReviewID:     review.ID,
		ProductID:    review.ProductID,
		ReviewerName: review.ReviewerName,
		Rating:       int64(review.Rating),
		Comment:      review.Comment,
		Verified:     review.Verified,
		Helpful:      int64(review.Helpful),
		CreatedAt:    review.CreatedAt,
	}
}
