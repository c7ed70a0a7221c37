package handler

import (
	"errors"

	"go-stock-manager/internal/repository"
	"go-stock-manager/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the panel's message box: validation
// problems are warnings, store failures are shown verbatim.
func respondError(c *fiber.Ctx, err error, data interface{}) error {
	body := fiber.Map{}
	if data != nil {
		body["data"] = data
	}

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		body["warning"] = vErr.Message
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, repository.ErrNotFound):
		body["error"] = "Product not found"
		return c.Status(fiber.StatusNotFound).JSON(body)
	case errors.Is(err, service.ErrStockChanged):
		body["warning"] = err.Error()
		return c.Status(fiber.StatusConflict).JSON(body)
	default:
		body["error"] = err.Error()
		return c.Status(fiber.StatusBadGateway).JSON(body)
	}
}
