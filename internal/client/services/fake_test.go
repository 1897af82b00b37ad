package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// fakeClient implements client.Client and records the calls it receives.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	nextIngredientID int64
	createIngErr     map[string]error
	createdNames     []string

	loginToken string
	loginErr   error

	recipe      *models.Recipe
	mutationErr error
	lastBody    []byte
	lastCT      string
	lastID      int64

	ingredients []models.Ingredient
	units       []models.IngredientUnit
	categories  []models.Category

	activations []models.Activation
	lastActReq  models.ActivationCodeRequest
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Ping(ctx context.Context) error { f.record("ping"); return nil }

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.record("login")
	return f.loginToken, f.loginErr
}

func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.record("categories")
	return f.categories, nil
}

func (f *fakeClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	f.record("create-category:" + name)
	return &models.Category{ID: 100, Name: name}, nil
}

func (f *fakeClient) RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	f.record(fmt.Sprintf("rename-category:%d:%s", id, name))
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeClient) DeleteCategory(ctx context.Context, id int64) error {
	f.record(fmt.Sprintf("delete-category:%d", id))
	return nil
}

func (f *fakeClient) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	f.record("ingredients")
	return append([]models.Ingredient(nil), f.ingredients...), nil
}

func (f *fakeClient) CreateIngredient(ctx context.Context, name string) (int64, error) {
	f.record("create-ingredient:" + name)
	if err := f.createIngErr[name]; err != nil {
		return 0, err
	}
	f.nextIngredientID++
	f.createdNames = append(f.createdNames, name)
	return f.nextIngredientID, nil
}

func (f *fakeClient) RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	f.record(fmt.Sprintf("rename-ingredient:%d:%s", id, name))
	return &models.Ingredient{ID: id, Name: name}, nil
}

func (f *fakeClient) DeleteIngredient(ctx context.Context, id int64) error {
	f.record(fmt.Sprintf("delete-ingredient:%d", id))
	return nil
}

func (f *fakeClient) IngredientUnits(ctx context.Context) ([]models.IngredientUnit, error) {
	f.record("units")
	return f.units, nil
}

func (f *fakeClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.record("recipes")
	if f.recipe == nil {
		return nil, nil
	}
	return []models.Recipe{*f.recipe}, nil
}

func (f *fakeClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	f.record(fmt.Sprintf("get-recipe:%d", id))
	if f.recipe == nil {
		return nil, client.ErrNotFound
	}
	return f.recipe, nil
}

func (f *fakeClient) CreateRecipe(ctx context.Context, body []byte, contentType string) (*models.Recipe, error) {
	f.record("create-recipe")
	f.lastBody, f.lastCT = body, contentType
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &models.Recipe{ID: 1}, nil
}

func (f *fakeClient) UpdateRecipe(ctx context.Context, id int64, body []byte, contentType string) (*models.Recipe, error) {
	f.record(fmt.Sprintf("update-recipe:%d", id))
	f.lastBody, f.lastCT, f.lastID = body, contentType, id
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &models.Recipe{ID: id}, nil
}

func (f *fakeClient) DeleteRecipe(ctx context.Context, id int64) error {
	f.record(fmt.Sprintf("delete-recipe:%d", id))
	return nil
}

func (f *fakeClient) ChangeRecipeAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error) {
	f.record(fmt.Sprintf("change-auth:%d:%t", id, needsAuth))
	return &models.Recipe{ID: id, NeedsAuth: needsAuth}, nil
}

func (f *fakeClient) PictureURL(id string) string { return "http://test/pictures/" + id }

func (f *fakeClient) ListActivations(ctx context.Context) ([]models.Activation, error) {
	f.record("activations")
	return f.activations, nil
}

func (f *fakeClient) CreateActivationCode(ctx context.Context, req models.ActivationCodeRequest) (*models.Activation, error) {
	f.record("create-code")
	f.lastActReq = req
	return &models.Activation{ID: 1, ActivationCode: "123456789012345", ActivationsLimit: req.ActivationsLimit}, nil
}

var errBoom = errors.New("boom")
