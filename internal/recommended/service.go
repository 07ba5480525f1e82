package recommended

import (
	"fmt"
	"slices"
	"time"

	"github.com/wichananm65/tourism-recsys/internal/place"
	"github.com/wichananm65/tourism-recsys/internal/validation"
)

// Service ranks catalog places for a source place.
type Service struct {
	repo         place.Repository
	modelVersion string
	now          func() time.Time
}

func NewService(repo place.Repository, modelVersion string) *Service {
	return &Service{repo: repo, modelVersion: modelVersion, now: time.Now}
}

// Recommend returns up to req.Count places other than the source place,
// highest rated first.
//
// Errors: *validation.RequestValidationError when Count is outside [1,20],
// place.ErrNotFound (wrapped) when the source place does not exist.
func (s *Service) Recommend(req RecommendationRequest) (RecommendationResponse, error) {
	if err := validation.Struct(req); err != nil {
		return RecommendationResponse{}, err
	}
	if _, err := s.repo.GetByID(req.PlaceID); err != nil {
		return RecommendationResponse{}, fmt.Errorf("place %d: %w", req.PlaceID, err)
	}

	candidates := filterByPreferences(s.repo.List(), req.Preferences)
	candidates = slices.DeleteFunc(candidates, func(p place.Place) bool {
		return p.ID == req.PlaceID
	})
	place.SortByRating(candidates)
	if len(candidates) > req.Count {
		candidates = candidates[:req.Count]
	}

	return RecommendationResponse{
		Recommendations: candidates,
		SourcePlaceID:   req.PlaceID,
		Total:           len(candidates),
		GeneratedAt:     s.now().UTC(),
		ModelVersion:    s.modelVersion,
	}, nil
}

// filterByPreferences applies every matching rule in turn. Keywords match
// exactly; "beach" and "temple" together leave nothing since a place has a
// single category.
func filterByPreferences(places []place.Place, prefs []string) []place.Place {
	for _, rule := range preferenceRules {
		if !slices.Contains(prefs, rule.keyword) {
			continue
		}
		places = slices.DeleteFunc(places, func(p place.Place) bool {
			return !slices.Contains(rule.categories, p.Category)
		})
	}
	return places
}
