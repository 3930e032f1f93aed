// Package http exposes the store through a REST boundary. The handler is a
// thin coordinator: it decodes requests, delegates to queries and use cases,
// and maps domain errors to HTTP statuses.
package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/get_order"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/get_product"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/list_products"
	"github.com/light-bringer/artisan-storefront/internal/app/store/queries/list_reviews"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/create_order"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/create_review"
	"github.com/light-bringer/artisan-storefront/internal/app/store/usecases/update_order_status"
)

// Handler wires the storefront API routes.
type Handler struct {
	getProduct        *get_product.Query
	listProducts      *list_products.Query
	listReviews       *list_reviews.Query
	getOrder          *get_order.Query
	createReview      *create_review.Interactor
	createOrder       *create_order.Interactor
	updateOrderStatus *update_order_status.Interactor

	logger *zap.Logger
}

// NewHandler creates a new storefront HTTP handler.
func NewHandler(
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	listReviews *list_reviews.Query,
	getOrder *get_order.Query,
	createReview *create_review.Interactor,
	createOrder *create_order.Interactor,
	updateOrderStatus *update_order_status.Interactor,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		getProduct:        getProduct,
		listProducts:      listProducts,
		listReviews:       listReviews,
		getOrder:          getOrder,
		createReview:      createReview,
		createOrder:       createOrder,
		updateOrderStatus: updateOrderStatus,
		logger:            logger,
	}
}

// RegisterRoutes mounts the API routes. Static routes are registered before
// the parameterized product lookup so "featured" and "search" are never
// treated as product ids.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", h.handleListProducts)
	products.Get("/featured", h.handleFeaturedProducts)
	products.Get("/search", h.handleSearchProducts)
	products.Get("/category/:category", h.handleProductsByCategory)
	products.Get("/:id", h.handleGetProduct)
	products.Get("/:id/reviews", h.handleListReviews)

	api.Post("/reviews", h.handleCreateReview)

	orders := api.Group("/orders")
	orders.Post("/", h.handleCreateOrder)
	orders.Get("/:id", h.handleGetOrder)
	orders.Patch("/:id/status", h.handleUpdateOrderStatus)
}

func (h *Handler) handleListProducts(c *fiber.Ctx) error {
	products, err := h.listProducts.Execute(c.UserContext(), &list_products.Request{})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) handleFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.listProducts.Execute(c.UserContext(), &list_products.Request{Featured: true})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) handleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	products, err := h.listProducts.Execute(c.UserContext(), &list_products.Request{Search: &query})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) handleProductsByCategory(c *fiber.Ctx) error {
	category := decodeParam(c, "category")
	products, err := h.listProducts.Execute(c.UserContext(), &list_products.Request{Category: category})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) handleGetProduct(c *fiber.Ctx) error {
	product, err := h.getProduct.Execute(c.UserContext(), &get_product.Request{ProductID: c.Params("id")})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

func (h *Handler) handleListReviews(c *fiber.Ctx) error {
	reviews, err := h.listReviews.Execute(c.UserContext(), &list_reviews.Request{ProductID: c.Params("id")})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(reviews)
}

// CreateReviewRequest is the review submission payload.
type CreateReviewRequest struct {
	ProductID    string `json:"productId"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (h *Handler) handleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respondBadBody(c, err)
	}

	review, err := h.createReview.Execute(c.UserContext(), &create_review.Request{
		ProductID:    req.ProductID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// CreateOrderRequest is the checkout submission payload. Items is the
// string-encoded line-items snapshot; the monetary totals were computed by
// the client's cart and are frozen as submitted.
type CreateOrderRequest struct {
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   *string       `json:"customerPhone"`
	ShippingAddress string        `json:"shippingAddress"`
	ShippingCity    string        `json:"shippingCity"`
	ShippingState   string        `json:"shippingState"`
	ShippingZip     string        `json:"shippingZip"`
	Items           string        `json:"items"`
	Subtotal        *domain.Money `json:"subtotal"`
	Shipping        *domain.Money `json:"shipping"`
	Tax             *domain.Money `json:"tax"`
	Total           *domain.Money `json:"total"`
}

func (h *Handler) handleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respondBadBody(c, err)
	}

	order, err := h.createOrder.Execute(c.UserContext(), &create_order.Request{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Total:           req.Total,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *Handler) handleGetOrder(c *fiber.Ctx) error {
	order, err := h.getOrder.Execute(c.UserContext(), &get_order.Request{OrderID: c.Params("id")})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(order)
}

// UpdateOrderStatusRequest carries the replacement status value.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respondBadBody(c, err)
	}

	order, err := h.updateOrderStatus.Execute(c.UserContext(), &update_order_status.Request{
		OrderID: c.Params("id"),
		Status:  req.Status,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(order)
}
