package mood

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/moods", h.getMoods)
	app.Get("/api/v1/mood", h.getActive)
	app.Put("/api/v1/mood", h.selectMood)
}

func (h *Handler) getMoods(c *fiber.Ctx) error {
	return c.JSON(Moods)
}

func (h *Handler) getActive(c *fiber.Ctx) error {
	return c.JSON(h.service.Active())
}

type selectRequest struct {
	Mood string `json:"mood"`
}

func (h *Handler) selectMood(c *fiber.Ctx) error {
	payload := new(selectRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	m, err := h.service.Select(payload.Mood)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown mood"})
	}
	return c.JSON(m)
}
