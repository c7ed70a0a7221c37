package handler

import (
	"go-stock-manager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ViewHandler struct {
	service service.ViewService
}

func NewViewHandler(s service.ViewService) *ViewHandler {
	return &ViewHandler{service: s}
}

func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	view, err := h.service.Refresh(c.UserContext())
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(view)
}
