package recommended

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/tourism-recsys/internal/logging"
	"github.com/wichananm65/tourism-recsys/internal/metrics"
	"github.com/wichananm65/tourism-recsys/internal/place"
	"github.com/wichananm65/tourism-recsys/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/v1/recommend", h.recommend)
}

// recommendPayload distinguishes an omitted num_recommendations (default 5)
// from an explicit 0 (rejected).
type recommendPayload struct {
	PlaceID            *int     `json:"place_id" validate:"required"`
	UserPreferences    []string `json:"user_preferences"`
	NumRecommendations *int     `json:"num_recommendations"`
}

func (h *Handler) recommend(c *fiber.Ctx) error {
	var payload recommendPayload
	if err := c.BodyParser(&payload); err != nil {
		return h.fail(c, validation.Invalid("body", "request body must be a valid recommendation JSON object"))
	}
	if err := validation.Struct(payload); err != nil {
		return h.fail(c, err)
	}

	req := NewRequest(*payload.PlaceID, payload.UserPreferences...)
	if payload.NumRecommendations != nil {
		req.Count = *payload.NumRecommendations
	}

	resp, err := h.service.Recommend(req)
	if errors.Is(err, place.ErrNotFound) {
		metrics.RecommendationsTotal.WithLabelValues("not_found").Inc()
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": fmt.Sprintf("Place %d not found", req.PlaceID)})
	}
	if err != nil {
		return h.fail(c, err)
	}

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	metrics.RecommendationResults.Observe(float64(resp.Total))
	logging.Debug().
		Int("place_id", req.PlaceID).
		Strs("preferences", req.Preferences).
		Int("total", resp.Total).
		Msg("recommendations generated")
	return c.JSON(resp)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		return err
	}
	metrics.RecommendationsTotal.WithLabelValues("invalid").Inc()
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": verr.Error(),
		"errors":  verr.FieldMessages(),
	})
}
