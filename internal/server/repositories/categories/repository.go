// Package categories stores recipe categories.
package categories

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Rename(ctx context.Context, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}
