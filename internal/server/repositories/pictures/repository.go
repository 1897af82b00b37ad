// Package pictures stores the metadata rows of recipe pictures. The image
// bytes live in object storage under the picture id.
package pictures

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	ListByRecipe(ctx context.Context, recipeID int64) ([]string, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, pic *models.Picture) error
	Delete(ctx context.Context, id string) error
}
