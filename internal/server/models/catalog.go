package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IngredientUnit remembers the unit an ingredient was last used with.
type IngredientUnit struct {
	IngredientID int64  `json:"ingredient_id"`
	Unit         string `json:"unit"`
}

// Units is the closed set of measurement units.
var Units = []string{"pinch", "piece", "kg", "gram", "ml", "liter", "cup"}

// ValidUnit reports whether u is one of Units.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}
