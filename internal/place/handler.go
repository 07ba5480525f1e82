package place

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/tourism-recsys/internal/validation"
)

const defaultPopularLimit = 5

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/places", h.listPlaces)
	// registered before :id so "popular" is not parsed as an id
	app.Get("/api/v1/places/popular", h.popularPlaces)
	app.Get("/api/v1/places/:id", h.getPlace)
	app.Get("/api/v1/stats", h.getStats)
}

type listResponse struct {
	Places  []Place `json:"places"`
	Total   int     `json:"total"`
	Filters Filter  `json:"filters"`
}

type popularQuery struct {
	Limit int `json:"limit" validate:"gte=1,lte=20"`
}

type popularResponse struct {
	Places []Place `json:"places"`
	Total  int     `json:"total"`
}

func (h *Handler) listPlaces(c *fiber.Ctx) error {
	var f Filter
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("city"); v != "" {
		f.City = &v
	}
	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		// NaN and Inf parse but cannot be encoded back into the response
		if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
			return validationFailed(c, validation.Invalid("min_rating", "min_rating must be a number"))
		}
		f.MinRating = &r
	}

	places := h.service.List(f)
	return c.JSON(listResponse{Places: places, Total: len(places), Filters: f})
}

func (h *Handler) popularPlaces(c *fiber.Ctx) error {
	q := popularQuery{Limit: defaultPopularLimit}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return validationFailed(c, validation.Invalid("limit", "limit must be an integer"))
		}
		q.Limit = n
	}
	if err := validation.Struct(q); err != nil {
		return validationFailed(c, err)
	}

	places := h.service.Popular(q.Limit)
	return c.JSON(popularResponse{Places: places, Total: len(places)})
}

func (h *Handler) getPlace(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return validationFailed(c, validation.Invalid("place_id", "place_id must be an integer"))
	}

	p, err := h.service.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Place not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

func validationFailed(c *fiber.Ctx, err error) error {
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": verr.Error(),
		"errors":  verr.FieldMessages(),
	})
}
