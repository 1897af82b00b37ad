package models

import "time"

// Records as returned by the recipe API.

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type IngredientUnit struct {
	IngredientID int64 `json:"ingredient_id"`
	Unit         Unit  `json:"unit"`
}

type RecipeIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"qty"`
	Unit       Unit       `json:"unit"`
}

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

type Activation struct {
	ID               int64     `json:"id"`
	ActivationCode   string    `json:"activation_code"`
	ActivationsLimit int       `json:"activations_limit"`
	ExpiresAt        time.Time `json:"expires_at"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

type ActivationCodeRequest struct {
	ActivationsLimit int    `json:"activations_limit"`
	ExpiresInDays    int    `json:"expires_in_days"`
	Description      string `json:"description"`
}
