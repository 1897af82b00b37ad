package client

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// Client is the recipe admin API as seen by the console.
type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (string, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) (int64, error)
	RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
	IngredientUnits(ctx context.Context) ([]models.IngredientUnit, error)

	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, body []byte, contentType string) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, body []byte, contentType string) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	ChangeRecipeAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error)
	PictureURL(id string) string

	ListActivations(ctx context.Context) ([]models.Activation, error)
	CreateActivationCode(ctx context.Context, req models.ActivationCodeRequest) (*models.Activation, error)
}
