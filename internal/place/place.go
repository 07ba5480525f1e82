package place

// Place is a tourism destination in the catalog.
// JSON tags follow the snake_case contract of the public API.
type Place struct {
	ID          int     `json:"place_id"`
	Name        string  `json:"place_name"`
	Category    string  `json:"category"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
	Description *string `json:"description,omitempty"`
}

// Filter selects places for List. Nil fields are not applied.
type Filter struct {
	Category  *string  `json:"category"`
	City      *string  `json:"city"`
	MinRating *float64 `json:"min_rating"`
}

// Stats summarises the catalog.
type Stats struct {
	TotalPlaces int      `json:"total_places"`
	Categories  []string `json:"categories"`
	Cities      []string `json:"cities"`
	AvgRating   float64  `json:"avg_rating"`
	TopRated    *Place   `json:"top_rated"`
}

func ptrString(s string) *string { return &s }

// DefaultCatalog returns the places served at startup, in catalog order.
// Catalog order is the tie-break order wherever places are ranked by rating.
func DefaultCatalog() []Place {
	return []Place{
		{ID: 1, Name: "Pantai Kuta", Category: "Beach", City: "Bali", Rating: 4.5, Description: ptrString("Famous beach with surfing")},
		{ID: 2, Name: "Candi Borobudur", Category: "Temple", City: "Yogyakarta", Rating: 4.8, Description: ptrString("Ancient Buddhist temple")},
		{ID: 3, Name: "Raja Ampat", Category: "Island", City: "Papua", Rating: 4.9, Description: ptrString("Diving paradise")},
		{ID: 4, Name: "Kawah Ijen", Category: "Mountain", City: "Banyuwangi", Rating: 4.7, Description: ptrString("Blue fire crater")},
		{ID: 5, Name: "Tanah Lot", Category: "Temple", City: "Bali", Rating: 4.4, Description: ptrString("Sea temple")},
		{ID: 6, Name: "Gili Trawangan", Category: "Island", City: "Lombok", Rating: 4.6, Description: ptrString("Party island")},
		{ID: 7, Name: "Bromo", Category: "Mountain", City: "East Java", Rating: 4.7, Description: ptrString("Active volcano")},
	}
}
