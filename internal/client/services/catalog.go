package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// CatalogService manages categories and ingredients.
type CatalogService struct {
	client client.Client
}

func NewCatalogService(c client.Client) *CatalogService {
	return &CatalogService{client: c}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.client.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrValidation)
	}
	return s.client.CreateCategory(ctx, name)
}

func (s *CatalogService) RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrValidation)
	}
	return s.client.RenameCategory(ctx, id, name)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.client.DeleteCategory(ctx, id)
}

// Ingredients returns all ingredients sorted by name, case-insensitively.
func (s *CatalogService) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	list, err := s.client.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *CatalogService) CreateIngredient(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: ingredient name is empty", ErrValidation)
	}
	return s.client.CreateIngredient(ctx, name)
}

func (s *CatalogService) RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: ingredient name is empty", ErrValidation)
	}
	return s.client.RenameIngredient(ctx, id, name)
}

func (s *CatalogService) DeleteIngredient(ctx context.Context, id int64) error {
	return s.client.DeleteIngredient(ctx, id)
}

// UnitIndex loads the last-used unit of every ingredient.
func (s *CatalogService) UnitIndex(ctx context.Context) (models.UnitIndex, error) {
	units, err := s.client.IngredientUnits(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewUnitIndex(units), nil
}

// SelectIngredient interprets what the operator typed in the ingredient
// selector. "#<id>" and "*<name>" are decoded as is; plain text selects the
// known ingredient with that name (ignoring case) or else names a new one.
func SelectIngredient(input string, known []models.Ingredient) (models.IngredientRef, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.IngredientRef{}, fmt.Errorf("%w: %w", ErrValidation, models.ErrMissingIngredient)
	}
	if input[0] == '#' || input[0] == '*' {
		ref, err := models.DecodeRef(input)
		if err != nil {
			return models.IngredientRef{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return ref, nil
	}
	for _, ing := range known {
		if strings.EqualFold(ing.Name, input) {
			return models.ExistingIngredient(ing.ID), nil
		}
	}
	return models.NewIngredient(input), nil
}
