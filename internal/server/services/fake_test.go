package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/dbx"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/activations"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/admins"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/categories"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/pictures"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/recipes"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeStore is the in-memory database behind the fake repositories.
type fakeStore struct {
	admins      map[string]*models.Admin
	categories  map[int64]string
	ingredients map[int64]string
	units       map[int64]string
	recipes     map[int64]*models.Recipe
	lines       map[int64][]models.RecipeIngredient
	pictures    map[string]int64
	picOrder    []string
	activations []models.Activation
	nextID      int64

	getAdminErr error
	createErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		admins:      map[string]*models.Admin{},
		categories:  map[int64]string{},
		ingredients: map[int64]string{},
		units:       map[int64]string{},
		recipes:     map[int64]*models.Recipe{},
		lines:       map[int64][]models.RecipeIngredient{},
		pictures:    map[string]int64{},
		nextID:      100,
	}
}

func (f *fakeStore) id() int64 { f.nextID++; return f.nextID }

type fakeRepoManager struct{ s *fakeStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Admins(dbx.DBTX) admins.Repository            { return (*fakeAdmins)(m.s) }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository    { return (*fakeCategories)(m.s) }
func (m *fakeRepoManager) Ingredients(dbx.DBTX) ingredients.Repository  { return (*fakeIngredients)(m.s) }
func (m *fakeRepoManager) Recipes(dbx.DBTX) recipes.Repository          { return (*fakeRecipes)(m.s) }
func (m *fakeRepoManager) Pictures(dbx.DBTX) pictures.Repository        { return (*fakePictures)(m.s) }
func (m *fakeRepoManager) Activations(dbx.DBTX) activations.Repository  { return (*fakeActivations)(m.s) }

type fakeAdmins fakeStore

func (f *fakeAdmins) Create(_ context.Context, a *models.Admin) (*models.Admin, error) {
	if _, ok := f.admins[a.Login]; ok {
		return nil, common.ErrorAlreadyExists
	}
	a.ID = (*fakeStore)(f).id()
	cp := *a
	f.admins[a.Login] = &cp
	return a, nil
}

func (f *fakeAdmins) GetByLogin(_ context.Context, login string) (*models.Admin, error) {
	if f.getAdminErr != nil {
		return nil, f.getAdminErr
	}
	a, ok := f.admins[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdmins) SetPassword(_ context.Context, login, hash string) error {
	a, ok := f.admins[login]
	if !ok {
		return common.ErrorNotFound
	}
	a.PasswordHash = hash
	return nil
}

type fakeCategories fakeStore

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for id, n := range f.categories {
		out = append(out, models.Category{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategories) Get(_ context.Context, id int64) (*models.Category, error) {
	n, ok := f.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Category{ID: id, Name: n}, nil
}

func (f *fakeCategories) Create(_ context.Context, name string) (*models.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := (*fakeStore)(f).id()
	f.categories[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategories) Rename(_ context.Context, id int64, name string) (*models.Category, error) {
	if _, ok := f.categories[id]; !ok {
		return nil, common.ErrorNotFound
	}
	f.categories[id] = name
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeIngredients fakeStore

func (f *fakeIngredients) List(context.Context) ([]models.Ingredient, error) {
	out := []models.Ingredient{}
	for id, n := range f.ingredients {
		out = append(out, models.Ingredient{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeIngredients) Get(_ context.Context, id int64) (*models.Ingredient, error) {
	n, ok := f.ingredients[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Ingredient{ID: id, Name: n}, nil
}

func (f *fakeIngredients) Create(_ context.Context, name string) (*models.Ingredient, error) {
	id := (*fakeStore)(f).id()
	f.ingredients[id] = name
	return &models.Ingredient{ID: id, Name: name}, nil
}

func (f *fakeIngredients) Rename(_ context.Context, id int64, name string) (*models.Ingredient, error) {
	if _, ok := f.ingredients[id]; !ok {
		return nil, common.ErrorNotFound
	}
	f.ingredients[id] = name
	return &models.Ingredient{ID: id, Name: name}, nil
}

func (f *fakeIngredients) Delete(_ context.Context, id int64) error {
	if _, ok := f.ingredients[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.ingredients, id)
	return nil
}

func (f *fakeIngredients) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.ingredients[id]
	return ok, nil
}

func (f *fakeIngredients) ListUnits(context.Context) ([]models.IngredientUnit, error) {
	out := []models.IngredientUnit{}
	for id, u := range f.units {
		out = append(out, models.IngredientUnit{IngredientID: id, Unit: u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out, nil
}

func (f *fakeIngredients) UpsertUnit(_ context.Context, id int64, unit string) error {
	f.units[id] = unit
	return nil
}

type fakeRecipes fakeStore

func (f *fakeRecipes) List(context.Context) ([]models.Recipe, error) {
	out := []models.Recipe{}
	for _, r := range f.recipes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRecipes) Get(_ context.Context, id int64) (*models.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r
	cp.Category.Name = f.categories[cp.Category.ID]
	return &cp, nil
}

func (f *fakeRecipes) Create(_ context.Context, r *models.Recipe) (*models.Recipe, error) {
	r.ID = (*fakeStore)(f).id()
	cp := *r
	f.recipes[r.ID] = &cp
	return r, nil
}

func (f *fakeRecipes) Update(_ context.Context, r *models.Recipe) error {
	if _, ok := f.recipes[r.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *r
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipes) SetNeedsAuth(_ context.Context, id int64, v bool) error {
	r, ok := f.recipes[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.NeedsAuth = v
	return nil
}

func (f *fakeRecipes) Delete(_ context.Context, id int64) error {
	if _, ok := f.recipes[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.recipes, id)
	delete(f.lines, id)
	for pid, rid := range f.pictures {
		if rid == id {
			delete(f.pictures, pid)
		}
	}
	return nil
}

func (f *fakeRecipes) Ingredients(_ context.Context, id int64) ([]models.RecipeIngredient, error) {
	out := []models.RecipeIngredient{}
	for _, l := range f.lines[id] {
		l.Ingredient.Name = f.ingredients[l.Ingredient.ID]
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRecipes) ReplaceIngredients(_ context.Context, id int64, items []models.RecipeIngredient) error {
	f.lines[id] = append([]models.RecipeIngredient(nil), items...)
	return nil
}

type fakePictures fakeStore

func (f *fakePictures) ListByRecipe(_ context.Context, id int64) ([]string, error) {
	out := []string{}
	for _, pid := range f.picOrder {
		if rid, ok := f.pictures[pid]; ok && rid == id {
			out = append(out, pid)
		}
	}
	return out, nil
}

func (f *fakePictures) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.pictures[id]
	return ok, nil
}

func (f *fakePictures) Create(_ context.Context, p *models.Picture) error {
	f.pictures[p.ID] = p.RecipeID
	f.picOrder = append(f.picOrder, p.ID)
	return nil
}

func (f *fakePictures) Delete(_ context.Context, id string) error {
	if _, ok := f.pictures[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.pictures, id)
	return nil
}

type fakeActivations fakeStore

func (f *fakeActivations) List(context.Context) ([]models.Activation, error) {
	return append([]models.Activation{}, f.activations...), nil
}

func (f *fakeActivations) Create(_ context.Context, a *models.Activation) (*models.Activation, error) {
	a.ID = (*fakeStore)(f).id()
	f.activations = append(f.activations, *a)
	return a, nil
}

// memPictures is an in-memory storage.PictureStore.
type memPictures struct {
	objects map[string][]byte
	deleted []string
	puts    int

	// putErr is returned by every Put after the first failAfter calls.
	putErr    error
	failAfter int
}

func newMemPictures() *memPictures { return &memPictures{objects: map[string][]byte{}} }

func (m *memPictures) Put(_ context.Context, id string, data []byte) error {
	m.puts++
	if m.putErr != nil && m.puts > m.failAfter {
		return m.putErr
	}
	m.objects[id] = data
	return nil
}

func (m *memPictures) Delete(_ context.Context, id string) error {
	delete(m.objects, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memPictures) URL(_ context.Context, id string) (string, error) {
	return "http://objects/" + id, nil
}
