package catalog

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CategorySelection exposes the persisted category choice so the public
// product listing can honor it without owning it.
type CategorySelection interface {
	Selected() string
}

type Handler struct {
	service   *Service
	selection CategorySelection
}

func NewHandler(service *Service, selection CategorySelection) *Handler {
	return &Handler{service: service, selection: selection}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

// RegisterProtectedRoutes registers the operator-only mutations; main
// places these behind the JWT middleware.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/product/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/product/:id<[0-9]+>", h.deleteProduct)
	app.Post("/api/v1/product/:id<[0-9]+>/image", h.uploadImage)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	// explicit query beats the persisted selection
	selected := c.Query("category")
	if selected == "" && h.selection != nil {
		selected = h.selection.Selected()
	}
	return c.JSON(h.service.Filtered(selected))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

// validateDraft checks an operator draft and returns all field errors
// together. An empty map means the draft is good; price is re-parsed by
// draftToProduct afterwards.
func validateDraft(d *Draft) map[string]string {
	errs := map[string]string{}
	if d.Name == "" {
		errs["name"] = "name is required"
	}
	price, err := strconv.Atoi(d.Price)
	if err != nil {
		errs["price"] = "price must be a number"
	} else if price < 0 {
		errs["price"] = "price must be >= 0"
	}
	return errs
}

// draftToProduct converts a validated draft; the id is assigned (create)
// or preserved (update) by the store.
func draftToProduct(d *Draft) Product {
	price, _ := strconv.Atoi(d.Price)
	return Product{
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
		Image:       d.Image,
	}
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	d := new(Draft)
	if err := c.BodyParser(d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// reject before any mutation so a bad draft never half-applies
	if ves := validateDraft(d); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created := h.service.Create(draftToProduct(d))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	d := new(Draft)
	if err := c.BodyParser(d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateDraft(d); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, draftToProduct(d))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deleted")
}

// uploadImage stores the uploaded file as an opaque data-URL string on the
// product. The catalog never interprets the string again; the storefront
// hands it straight to an <img> tag.
func (h *Handler) uploadImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("file is required")
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	dataURL := "data:" + http.DetectContentType(b) + ";base64," + base64.StdEncoding.EncodeToString(b)
	p.Image = &dataURL
	updated, err := h.service.Update(id, p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}
