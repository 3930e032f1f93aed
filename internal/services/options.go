// Package services wires the application graph.
package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/get_order"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/get_product"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/list_products"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/list_reviews"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/create_order"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/create_review"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/update_order_status"
	"github.com/light-bringer/artisan-storefront/internal/config"
	"github.com/light-bringer/artisan-storefront/internal/pkg/clock"
	"github.com/light-bringer/artisan-storefront/internal/storage/memorystore"
	"github.com/light-bringer/artisan-storefront/internal/storage/spannerstore"
	transporthttp "github.com/light-bringer/artisan-storefront/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store         contracts.Store
	Handler       *transporthttp.Handler
	SpannerClient *spanner.Client
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Pick the storage backend
	var (
		store         contracts.Store
		spannerClient *spanner.Client
	)
	switch cfg.StorageBackend {
	case config.BackendSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		spannerClient = client
		store = spannerstore.New(client)
	default:
		store = memorystore.New()
	}

	// 2. Infrastructure components
	clk := clock.NewRealClock()

	// 3. Command use cases (write operations)
	createReviewUseCase := create_review.NewInteractor(store, clk)
	createOrderUseCase := create_order.NewInteractor(store, clk)
	updateOrderStatusUseCase := update_order_status.NewInteractor(store)

	// 4. Query use cases (read operations)
	getProductQuery := get_product.NewQuery(store)
	listProductsQuery := list_products.NewQuery(store)
	listReviewsQuery := list_reviews.NewQuery(store)
	getOrderQuery := get_order.NewQuery(store)

	// 5. HTTP handler
	handler := transporthttp.NewHandler(
		getProductQuery,
		listProductsQuery,
		listReviewsQuery,
		getOrderQuery,
		createReviewUseCase,
		createOrderUseCase,
		updateOrderStatusUseCase,
		logger,
	)

	return &ServiceOptions{
		Store:         store,
		Handler:       handler,
		SpannerClient: spannerClient,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
