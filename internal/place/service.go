package place

import (
	"cmp"
	"slices"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the places matching every set field of f, in catalog order.
func (s *Service) List(f Filter) []Place {
	out := make([]Place, 0)
	for _, p := range s.repo.List() {
		if f.Category != nil && !strings.EqualFold(p.Category, *f.Category) {
			continue
		}
		if f.City != nil && !strings.EqualFold(p.City, *f.City) {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Service) GetByID(id int) (Place, error) {
	return s.repo.GetByID(id)
}

// Popular returns up to limit places, highest rated first.
func (s *Service) Popular(limit int) []Place {
	places := s.repo.List()
	SortByRating(places)
	if limit < len(places) {
		places = places[:max(limit, 0)]
	}
	return places
}

// Stats aggregates the whole catalog. Categories and cities are listed in
// order of first appearance; the first of equally rated places is top rated.
func (s *Service) Stats() Stats {
	places := s.repo.List()
	st := Stats{
		TotalPlaces: len(places),
		Categories:  make([]string, 0),
		Cities:      make([]string, 0),
	}
	if len(places) == 0 {
		return st
	}

	seenCat := map[string]bool{}
	seenCity := map[string]bool{}
	var sum float64
	top := 0
	for i, p := range places {
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			st.Categories = append(st.Categories, p.Category)
		}
		if !seenCity[p.City] {
			seenCity[p.City] = true
			st.Cities = append(st.Cities, p.City)
		}
		sum += p.Rating
		if p.Rating > places[top].Rating {
			top = i
		}
	}
	st.AvgRating = sum / float64(len(places))
	st.TopRated = &places[top]
	return st
}

// SortByRating orders places by rating, highest first. Equal ratings keep
// their relative order.
func SortByRating(places []Place) {
	slices.SortStableFunc(places, func(a, b Place) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
}
