package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/repomanager"
)

// CatalogService manages categories and ingredients.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return name, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return s.repomanager.Categories(s.db).Get(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Categories(s.db).Create(ctx, name)
}

func (s *CatalogService) RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Categories(s.db).Rename(ctx, id, name)
}

// DeleteCategory removes the category together with its recipes.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repomanager.Categories(s.db).Delete(ctx, id)
}

func (s *CatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.repomanager.Ingredients(s.db).List(ctx)
}

func (s *CatalogService) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	return s.repomanager.Ingredients(s.db).Get(ctx, id)
}

func (s *CatalogService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Ingredients(s.db).Create(ctx, name)
}

func (s *CatalogService) RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Ingredients(s.db).Rename(ctx, id, name)
}

func (s *CatalogService) DeleteIngredient(ctx context.Context, id int64) error {
	return s.repomanager.Ingredients(s.db).Delete(ctx, id)
}

func (s *CatalogService) IngredientUnits(ctx context.Context) ([]models.IngredientUnit, error) {
	return s.repomanager.Ingredients(s.db).ListUnits(ctx)
}

// SeedCategories creates every name that does not exist yet and returns how
// many were added.
func (s *CatalogService) SeedCategories(ctx context.Context, names []string) (int, error) {
	existing, err := s.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[strings.ToLower(c.Name)] = struct{}{}
	}

	added := 0
	for _, n := range names {
		if _, ok := have[strings.ToLower(n)]; ok {
			continue
		}
		if _, err := s.CreateCategory(ctx, n); err != nil {
			return added, fmt.Errorf("seed %q: %w", n, err)
		}
		have[strings.ToLower(n)] = struct{}{}
		added++
	}
	return added, nil
}

// DefaultCategories is the starter set seeded by the manage tool.
var DefaultCategories = []string{
	"Desserts", "Bakery", "Breakfasts", "Snacks", "Soups", "Main Courses", "Salads", "Dinners",
}
