package place

import (
	"errors"
	"reflect"
	"testing"
)

func mustCatalog(t *testing.T, seed []Place) *CatalogRepository {
	t.Helper()
	r, err := NewCatalogRepository(seed)
	if err != nil {
		t.Fatalf("NewCatalogRepository: %v", err)
	}
	return r
}

func TestCatalogRepository_GetByIDRoundTrip(t *testing.T) {
	seed := DefaultCatalog()
	r := mustCatalog(t, seed)

	for _, want := range seed {
		got, err := r.GetByID(want.ID)
		if err != nil {
			t.Fatalf("GetByID(%d): %v", want.ID, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("GetByID(%d) = %+v, want %+v", want.ID, got, want)
		}
	}

	if _, err := r.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for 999, got %v", err)
	}
}

func TestCatalogRepository_ListKeepsOrder(t *testing.T) {
	r := mustCatalog(t, DefaultCatalog())
	got := r.List()
	if len(got) != 7 {
		t.Fatalf("expected 7 places, got %d", len(got))
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Fatalf("position %d holds id %d", i, p.ID)
		}
	}
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	r := mustCatalog(t, DefaultCatalog())

	list := r.List()
	list[0].Name = "changed"
	*list[0].Description = "changed"

	p, _ := r.GetByID(1)
	p.Rating = 0

	again, _ := r.GetByID(1)
	if again.Name != "Pantai Kuta" || *again.Description != "Famous beach with surfing" || again.Rating != 4.5 {
		t.Fatalf("catalog was mutated through a returned value: %+v", again)
	}
}

func TestCatalogRepository_SeedIsCopied(t *testing.T) {
	seed := DefaultCatalog()
	r := mustCatalog(t, seed)
	seed[2].Rating = 1

	p, _ := r.GetByID(3)
	if p.Rating != 4.9 {
		t.Fatalf("catalog shares memory with seed: %+v", p)
	}
}

func TestNewCatalogRepository_RejectsBadIDs(t *testing.T) {
	if _, err := NewCatalogRepository([]Place{{ID: 1}, {ID: 1}}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := NewCatalogRepository([]Place{{ID: 0}}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	r, err := NewCatalogRepository(nil)
	if err != nil || len(r.List()) != 0 {
		t.Fatalf("empty catalog should be valid, got %v", err)
	}
}
