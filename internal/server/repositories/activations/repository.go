// Package activations stores app activation codes.
package activations

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Activation, error)
	Create(ctx context.Context, a *models.Activation) (*models.Activation, error)
}
