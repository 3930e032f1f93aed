package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// errorResponse is the uniform error envelope.
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondError maps domain errors to HTTP statuses: validation failures are
// 400 with a per-field map, not-found sentinels are 404, everything else is
// a logged 500.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	if verr, ok := domain.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:  "validation_failed",
			Fields: verr.Fields,
		})
	}
	if domain.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	}

	h.logger.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
		Error: "internal_error",
	})
}

func (h *Handler) respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error:   "invalid_body",
		Message: err.Error(),
	})
}

// decodeParam unescapes a path parameter, so categories like
// "Home%20Decor" arrive as stored. Undecodable values pass through raw.
func decodeParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
