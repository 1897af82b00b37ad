package httpapi

import (
	"context"
	"errors"
	"sort"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

var errBoom = errors.New("boom")

type fakeAdmins struct{}

func (fakeAdmins) Login(_ context.Context, login, password string) (string, error) {
	if password != "pw" {
		return "", common.ErrorUnauthorized
	}
	return login + "-token", nil
}

func (fakeAdmins) Authorize(_ context.Context, token string) (*models.Admin, error) {
	switch token {
	case "editor-token":
		return &models.Admin{ID: 1, Login: "editor", Role: common.RoleEditor}, nil
	case "manager-token":
		return &models.Admin{ID: 2, Login: "manager", Role: common.RoleManager}, nil
	case "broken-token":
		return nil, errBoom
	}
	return nil, common.ErrorUnauthorized
}

type fakeCatalog struct {
	categories map[int64]string
	nextID     int64
	listErr    error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{categories: map[int64]string{1: "Soups"}, nextID: 10}
}

func (f *fakeCatalog) ListCategories(context.Context) ([]models.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Category{}
	for id, n := range f.categories {
		out = append(out, models.Category{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCatalog) GetCategory(_ context.Context, id int64) (*models.Category, error) {
	n, ok := f.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Category{ID: id, Name: n}, nil
}

func (f *fakeCatalog) CreateCategory(_ context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}
	for _, n := range f.categories {
		if n == name {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.nextID++
	f.categories[f.nextID] = name
	return &models.Category{ID: f.nextID, Name: name}, nil
}

func (f *fakeCatalog) RenameCategory(_ context.Context, id int64, name string) (*models.Category, error) {
	if _, ok := f.categories[id]; !ok {
		return nil, common.ErrorNotFound
	}
	f.categories[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCatalog) ListIngredients(context.Context) ([]models.Ingredient, error) {
	return []models.Ingredient{{ID: 3, Name: "Salt"}}, nil
}

func (f *fakeCatalog) GetIngredient(_ context.Context, id int64) (*models.Ingredient, error) {
	if id != 3 {
		return nil, common.ErrorNotFound
	}
	return &models.Ingredient{ID: 3, Name: "Salt"}, nil
}

func (f *fakeCatalog) CreateIngredient(_ context.Context, name string) (*models.Ingredient, error) {
	return &models.Ingredient{ID: 4, Name: name}, nil
}

func (f *fakeCatalog) RenameIngredient(_ context.Context, id int64, name string) (*models.Ingredient, error) {
	return &models.Ingredient{ID: id, Name: name}, nil
}

func (f *fakeCatalog) DeleteIngredient(context.Context, int64) error { return nil }

func (f *fakeCatalog) IngredientUnits(context.Context) ([]models.IngredientUnit, error) {
	return []models.IngredientUnit{{IngredientID: 3, Unit: "pinch"}}, nil
}

// fakeRecipes records the last decoded form.
type fakeRecipes struct {
	lastInput *services.RecipeInput
	lastID    int64
	err       error
}

func (f *fakeRecipes) recipe(id int64, in services.RecipeInput) *models.Recipe {
	return &models.Recipe{ID: id, Name: in.Name, Category: models.Category{ID: in.CategoryID}, Pictures: []string{}, Ingredients: []models.RecipeIngredient{}}
}

func (f *fakeRecipes) List(context.Context) ([]models.Recipe, error) {
	return []models.Recipe{{ID: 7, Name: "Broth"}}, nil
}

func (f *fakeRecipes) Get(_ context.Context, id int64) (*models.Recipe, error) {
	if id != 7 {
		return nil, common.ErrorNotFound
	}
	return &models.Recipe{ID: 7, Name: "Broth"}, nil
}

func (f *fakeRecipes) Create(_ context.Context, in services.RecipeInput) (*models.Recipe, error) {
	f.lastInput = &in
	if f.err != nil {
		return nil, f.err
	}
	return f.recipe(8, in), nil
}

func (f *fakeRecipes) Update(_ context.Context, id int64, in services.RecipeInput) (*models.Recipe, error) {
	f.lastInput, f.lastID = &in, id
	if f.err != nil {
		return nil, f.err
	}
	return f.recipe(id, in), nil
}

func (f *fakeRecipes) SetNeedsAuth(_ context.Context, id int64, v bool) (*models.Recipe, error) {
	if id != 7 {
		return nil, common.ErrorNotFound
	}
	return &models.Recipe{ID: 7, NeedsAuth: v}, nil
}

func (f *fakeRecipes) Delete(_ context.Context, id int64) error {
	if id != 7 {
		return common.ErrorNotFound
	}
	return nil
}

func (f *fakeRecipes) PictureURL(_ context.Context, id string) (string, error) {
	if id != "p1" {
		return "", common.ErrorNotFound
	}
	return "http://objects/p1?sig=x", nil
}

type fakeActivations struct {
	created []services.ActivationRequest
}

func (f *fakeActivations) List(context.Context) ([]models.Activation, error) {
	return []models.Activation{{ID: 1, ActivationCode: "123456789012345"}}, nil
}

func (f *fakeActivations) Create(_ context.Context, req services.ActivationRequest) (*models.Activation, error) {
	if req.ActivationsLimit <= 0 {
		return nil, common.ErrorValidation
	}
	f.created = append(f.created, req)
	return &models.Activation{ID: 2, ActivationCode: "000000000000001", ActivationsLimit: req.ActivationsLimit}, nil
}
