package handler

import (
	"go-stock-manager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProductForm tells the client whether the product form can be shown and
// with which categories.
func (h *ProductHandler) GetProductForm(c *fiber.Ctx) error {
	form, err := h.service.ProductForm(c.UserContext())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(form)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, nil)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product added: " + product.Name, "data": product})
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(products)
}
