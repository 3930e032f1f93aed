package create_review

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/pkg/clock"
)

// Request contains the data needed to submit a review.
type Request struct {
	ProductID    string `validate:"required"`
	ReviewerName string `validate:"required,min=2,max=100"`
	Rating       int    `validate:"required,min=1,max=5"`
	Comment      string `validate:"required,max=5000"`
}

// Interactor handles the create review use case.
type Interactor struct {
	store    contracts.ReviewRepository
	validate *validator.Validate
	clock    clock.Clock
}

// NewInteractor creates a new create review interactor.
func NewInteractor(store contracts.ReviewRepository, clk clock.Clock) *Interactor {
	return &Interactor{
		store:    store,
		validate: validator.New(),
		clock:    clk,
	}
}

// Execute validates the submission and stores the review. The store
// recomputes the product's aggregate rating in the same critical section, so
// a rejected request leaves both the review collection and the product
// untouched.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Review, error) {
	if err := i.validateRequest(req); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:           uuid.New().String(),
		ProductID:    req.ProductID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Verified:     false,
		Helpful:      0,
		CreatedAt:    i.clock.Now(),
	}

	if err := i.store.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (i *Interactor) validateRequest(req *Request) error {
	err := i.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate review: %w", err)
	}

	ve := domain.NewValidationError()
	for _, fe := range verrs {
		switch fe.Field() {
		case "ProductID":
			ve.Add("productId", "product reference is required")
		case "ReviewerName":
			ve.Add("reviewerName", "reviewer name must be 2-100 characters")
		case "Rating":
			ve.Add("rating", fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
		case "Comment":
			ve.Add("comment", "comment is required")
		default:
			ve.Add(fe.Field(), fe.Tag())
		}
	}
	return ve
}
