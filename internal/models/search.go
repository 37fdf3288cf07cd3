package models

// ProductFilter narrows a catalog product listing. Empty fields are ignored;
// set fields all have to match.
type ProductFilter struct {
	Name           string
	Description    string
	MaxPrice       *float64
	CategoryID     *uint
	ManufacturerID *uint
}

// SearchResult groups the cross-entity matches for one search query.
type SearchResult struct {
	Products      []Product      `json:"products"`
	Categories    []Category     `json:"categories"`
	Manufacturers []Manufacturer `json:"manufacturers"`
}
