// Package ingredients stores ingredients and the unit each was last used with.
package ingredients

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Ingredient, error)
	Get(ctx context.Context, id int64) (*models.Ingredient, error)
	Create(ctx context.Context, name string) (*models.Ingredient, error)
	Rename(ctx context.Context, id int64, name string) (*models.Ingredient, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)

	ListUnits(ctx context.Context) ([]models.IngredientUnit, error)
	UpsertUnit(ctx context.Context, id int64, unit string) error
}
