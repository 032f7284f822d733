package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HandleIndex renders the upload form. Every interaction starts here.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}
