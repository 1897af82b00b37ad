package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/payload"
	"github.com/dmitrijs2005/recipeadmin/internal/client/pictures"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// RecipeService submits drafts and reads recipes back.
type RecipeService struct {
	client   client.Client
	resolver *IngredientResolver
	logger   logging.Logger
}

func NewRecipeService(c client.Client, logger logging.Logger) *RecipeService {
	return &RecipeService{
		client:   c,
		resolver: NewIngredientResolver(c, logger),
		logger:   logger.With("module", "recipes"),
	}
}

// Create validates draft, resolves its ingredients and sends exactly one
// create request.
func (s *RecipeService) Create(ctx context.Context, draft *models.RecipeDraft) (*models.Recipe, error) {
	body, err := s.prepare(ctx, draft, false)
	if err != nil {
		return nil, err
	}
	rec, err := s.client.CreateRecipe(ctx, body.Data, body.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMutation, err)
	}
	s.logger.Info(ctx, "recipe created", "id", rec.ID)
	return rec, nil
}

// Update is Create for an existing recipe: the body also lists the
// persisted pictures to keep.
func (s *RecipeService) Update(ctx context.Context, id int64, draft *models.RecipeDraft) (*models.Recipe, error) {
	body, err := s.prepare(ctx, draft, true)
	if err != nil {
		return nil, err
	}
	rec, err := s.client.UpdateRecipe(ctx, id, body.Data, body.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMutation, err)
	}
	s.logger.Info(ctx, "recipe updated", "id", id)
	return rec, nil
}

func (s *RecipeService) prepare(ctx context.Context, draft *models.RecipeDraft, update bool) (*payload.Body, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	resolved, err := s.resolver.Resolve(ctx, draft.Lines)
	if err != nil {
		return nil, err
	}

	body, err := payload.Build(payload.RecipeForm{
		Name:         draft.Name,
		Instructions: draft.Instructions,
		CategoryID:   draft.CategoryID,
		Ingredients:  resolved,
		Pictures:     pictures.Project(draft.Pictures),
		IncludeKept:  update,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMutation, err)
	}
	return body, nil
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.client.ListRecipes(ctx)
}

func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	return s.client.GetRecipe(ctx, id)
}

// LoadDraft fetches a recipe and hydrates an edit draft from it.
func (s *RecipeService) LoadDraft(ctx context.Context, id int64) (*models.RecipeDraft, error) {
	rec, err := s.client.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.DraftFromRecipe(rec, s.client.PictureURL), nil
}

func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "recipe deleted", "id", id)
	return nil
}

func (s *RecipeService) SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error) {
	return s.client.ChangeRecipeAuth(ctx, id, needsAuth)
}
