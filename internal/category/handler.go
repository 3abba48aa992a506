package category

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/category", h.getSelected)
	app.Put("/api/v1/category", h.selectCategory)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(Categories)
}

func (h *Handler) getSelected(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"selected": h.service.Selected()})
}

type selectRequest struct {
	Category string `json:"category"`
}

func (h *Handler) selectCategory(c *fiber.Ctx) error {
	payload := new(selectRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Select(payload.Category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown category"})
	}
	return c.JSON(fiber.Map{"selected": payload.Category})
}
