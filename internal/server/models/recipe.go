package models

import "time"

type RecipeIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"qty"`
	Unit       string     `json:"unit"`
}

// Recipe is a stored recipe. Pictures holds picture ids.
type Recipe struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Instructions string             `json:"instructions"`
	Category     Category           `json:"category"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Pictures     []string           `json:"pictures"`
	NeedsAuth    bool               `json:"needs_auth"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Picture is the metadata row of an optimized JPEG kept in object storage
// under ID.
type Picture struct {
	ID       string
	RecipeID int64
	Size     int64
}
