package recommended

import (
	"time"

	"github.com/wichananm65/tourism-recsys/internal/place"
)

// DefaultCount is used when a request does not set num_recommendations.
const DefaultCount = 5

// RecommendationRequest asks for places similar to PlaceID.
type RecommendationRequest struct {
	PlaceID     int      `json:"place_id"`
	Preferences []string `json:"user_preferences"`
	Count       int      `json:"num_recommendations" validate:"gte=1,lte=20"`
}

// NewRequest fills in the default count.
func NewRequest(placeID int, preferences ...string) RecommendationRequest {
	return RecommendationRequest{PlaceID: placeID, Preferences: preferences, Count: DefaultCount}
}

// RecommendationResponse is the public DTO returned by the recommend API.
type RecommendationResponse struct {
	Recommendations []place.Place `json:"recommendations"`
	SourcePlaceID   int           `json:"source_place_id"`
	Total           int           `json:"total"`
	GeneratedAt     time.Time     `json:"generated_at"`
	ModelVersion    string        `json:"model_version"`
}

// preferenceRules maps a preference keyword to the categories it keeps.
// Rules run in this order and each one narrows the previous result.
var preferenceRules = []struct {
	keyword    string
	categories []string
}{
	{"beach", []string{"Beach", "Island"}},
	{"temple", []string{"Temple"}},
	{"mountain", []string{"Mountain"}},
}
