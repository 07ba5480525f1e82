package place

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("place not found")
	ErrDuplicateID = errors.New("duplicate place id")
	ErrInvalidID   = errors.New("place id must be positive")
)

type Repository interface {
	// List returns every place in catalog order.
	List() []Place
	GetByID(id int) (Place, error)
}

// CatalogRepository serves a fixed list of places built once at startup.
// It is never written after construction, so it needs no locking.
type CatalogRepository struct {
	places []Place
	index  map[int]int
}

var _ Repository = (*CatalogRepository)(nil)

// NewCatalogRepository copies seed into a read-only catalog.
func NewCatalogRepository(seed []Place) (*CatalogRepository, error) {
	r := &CatalogRepository{
		places: make([]Place, 0, len(seed)),
		index:  make(map[int]int, len(seed)),
	}
	for _, p := range seed {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, p.ID)
		}
		if _, ok := r.index[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		r.index[p.ID] = len(r.places)
		r.places = append(r.places, clone(p))
	}
	return r, nil
}

func (r *CatalogRepository) List() []Place {
	out := make([]Place, len(r.places))
	for i, p := range r.places {
		out[i] = clone(p)
	}
	return out
}

func (r *CatalogRepository) GetByID(id int) (Place, error) {
	i, ok := r.index[id]
	if !ok {
		return Place{}, ErrNotFound
	}
	return clone(r.places[i]), nil
}

// clone detaches the description pointer from the catalog's copy.
func clone(p Place) Place {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}
