package admins

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	GetByLogin(ctx context.Context, login string) (*models.Admin, error)
	SetPassword(ctx context.Context, login, passwordHash string) error
}
