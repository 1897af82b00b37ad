// Package recipes stores recipes and their ingredient lines.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) error
	Delete(ctx context.Context, id int64) error

	Ingredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error)
	ReplaceIngredients(ctx context.Context, recipeID int64, items []models.RecipeIngredient) error
}
