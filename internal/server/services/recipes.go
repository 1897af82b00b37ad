package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/dbx"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeadmin/internal/server/storage"
)

// Upload is one picture file part of a recipe mutation.
type Upload struct {
	FileName string
	Data     []byte
}

// RecipeInput is a decoded recipe mutation form.
type RecipeInput struct {
	Name         string
	Instructions string
	CategoryID   int64
	Ingredients  string
	// NeedsAuth is nil when the form does not carry the field.
	NeedsAuth *bool
	// KeepPictures lists the persisted pictures to keep on update. Nil
	// keeps all of them.
	KeepPictures []string
	Pictures     []Upload
}

// RecipeService stores recipes, their ingredient lines and pictures.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.PictureStore
	logger      logging.Logger
	optimize    func([]byte) ([]byte, error)
	newID       func() string
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, store storage.PictureStore, logger logging.Logger) *RecipeService {
	return &RecipeService{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      logger.With("module", "recipes"),
		optimize:    storage.Optimize,
		newID:       uuid.NewString,
	}
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recs, err := s.repomanager.Recipes(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if err := s.fill(ctx, s.db, &recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	rec, err := s.repomanager.Recipes(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fill(ctx, s.db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecipeService) fill(ctx context.Context, db dbx.DBTX, rec *models.Recipe) error {
	ings, err := s.repomanager.Recipes(db).Ingredients(ctx, rec.ID)
	if err != nil {
		return err
	}
	pics, err := s.repomanager.Pictures(db).ListByRecipe(ctx, rec.ID)
	if err != nil {
		return err
	}
	rec.Ingredients = ings
	rec.Pictures = pics
	return nil
}

// prepare validates the form and optimizes the uploads before any
// transaction is opened.
func (s *RecipeService) prepare(in RecipeInput) ([]IngredientEntry, [][]byte, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if in.CategoryID <= 0 {
		return nil, nil, fmt.Errorf("%w: category is required", common.ErrorValidation)
	}

	entries, err := ParseIngredients(in.Ingredients)
	if err != nil {
		return nil, nil, err
	}

	pics := make([][]byte, 0, len(in.Pictures))
	for _, up := range in.Pictures {
		if up.FileName == "" || len(up.Data) == 0 {
			continue
		}
		data, err := s.optimize(up.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: picture %q: %w", common.ErrorValidation, up.FileName, err)
		}
		pics = append(pics, data)
	}
	return entries, pics, nil
}

// Create stores a new recipe. needs_auth defaults to true.
func (s *RecipeService) Create(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	entries, pics, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	rec := &models.Recipe{
		Name:         strings.TrimSpace(in.Name),
		Instructions: in.Instructions,
		Category:     models.Category{ID: in.CategoryID},
		NeedsAuth:    true,
	}
	if in.NeedsAuth != nil {
		rec.NeedsAuth = *in.NeedsAuth
	}

	var stored []string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		if _, err := s.repomanager.Recipes(tx).Create(ctx, rec); err != nil {
			return fmt.Errorf("error creating recipe: %w", err)
		}
		if err := s.writeIngredients(ctx, tx, rec.ID, entries); err != nil {
			return err
		}
		return s.addPictures(ctx, tx, rec.ID, pics, &stored)
	})
	if err != nil {
		s.discard(ctx, stored)
		return nil, err
	}

	s.logger.Info(ctx, "recipe created", "recipe_id", rec.ID, "ingredients", len(entries), "pictures", len(pics))
	return s.Get(ctx, rec.ID)
}

// Update rewrites the recipe, replaces its ingredient lines, drops the
// persisted pictures not listed in KeepPictures and stores new uploads.
func (s *RecipeService) Update(ctx context.Context, id int64, in RecipeInput) (*models.Recipe, error) {
	entries, pics, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	var removed, stored []string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		recipes := s.repomanager.Recipes(tx)
		rec, err := recipes.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := s.checkCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}

		rec.Name = strings.TrimSpace(in.Name)
		rec.Instructions = in.Instructions
		rec.Category = models.Category{ID: in.CategoryID}
		if in.NeedsAuth != nil {
			rec.NeedsAuth = *in.NeedsAuth
		}
		if err := recipes.Update(ctx, rec); err != nil {
			return fmt.Errorf("error updating recipe: %w", err)
		}

		if err := s.writeIngredients(ctx, tx, id, entries); err != nil {
			return err
		}

		if in.KeepPictures != nil {
			removed, err = s.dropPictures(ctx, tx, id, in.KeepPictures)
			if err != nil {
				return err
			}
		}
		return s.addPictures(ctx, tx, id, pics, &stored)
	})
	if err != nil {
		s.discard(ctx, stored)
		return nil, err
	}

	s.discard(ctx, removed)
	s.logger.Info(ctx, "recipe updated", "recipe_id", id, "pictures_added", len(stored), "pictures_removed", len(removed))
	return s.Get(ctx, id)
}

func (s *RecipeService) SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error) {
	if err := s.repomanager.Recipes(s.db).SetNeedsAuth(ctx, id, needsAuth); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the recipe with its lines and pictures.
func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	pics, err := dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([]string, error) {
		pics, err := s.repomanager.Pictures(tx).ListByRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		return pics, s.repomanager.Recipes(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.discard(ctx, pics)
	return nil
}

// PictureURL returns where the picture can be fetched from.
func (s *RecipeService) PictureURL(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", common.ErrorNotFound
	}
	ok, err := s.repomanager.Pictures(s.db).Exists(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrorNotFound
	}
	return s.store.URL(ctx, id)
}

func (s *RecipeService) checkCategory(ctx context.Context, tx dbx.DBTX, id int64) error {
	if _, err := s.repomanager.Categories(tx).Get(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: unknown category %d", common.ErrorValidation, id)
		}
		return err
	}
	return nil
}

// writeIngredients checks every referenced ingredient, replaces the lines
// and remembers each ingredient's unit in entry order.
func (s *RecipeService) writeIngredients(ctx context.Context, tx dbx.DBTX, recipeID int64, entries []IngredientEntry) error {
	ingredients := s.repomanager.Ingredients(tx)

	items := make([]models.RecipeIngredient, 0, len(entries))
	for _, e := range entries {
		ok, err := ingredients.Exists(ctx, e.IngredientID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: ingredient %d", common.ErrorNotFound, e.IngredientID)
		}
		items = append(items, models.RecipeIngredient{
			Ingredient: models.Ingredient{ID: e.IngredientID},
			Quantity:   e.Quantity,
			Unit:       e.Unit,
		})
	}

	if err := s.repomanager.Recipes(tx).ReplaceIngredients(ctx, recipeID, items); err != nil {
		return err
	}
	for _, e := range entries {
		if err := ingredients.UpsertUnit(ctx, e.IngredientID, e.Unit); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) dropPictures(ctx context.Context, tx dbx.DBTX, recipeID int64, keep []string) ([]string, error) {
	pictures := s.repomanager.Pictures(tx)
	current, err := pictures.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	kept := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}

	var removed []string
	for _, id := range current {
		if _, ok := kept[id]; ok {
			continue
		}
		if err := pictures.Delete(ctx, id); err != nil {
			return nil, err
		}
		removed = append(removed, id)
	}
	return removed, nil
}

// addPictures records and uploads pics. Ids of uploaded objects are appended
// to stored so the caller can clean up if the transaction fails.
func (s *RecipeService) addPictures(ctx context.Context, tx dbx.DBTX, recipeID int64, pics [][]byte, stored *[]string) error {
	pictures := s.repomanager.Pictures(tx)
	for _, data := range pics {
		id := s.newID()
		if err := pictures.Create(ctx, &models.Picture{ID: id, RecipeID: recipeID, Size: int64(len(data))}); err != nil {
			return err
		}
		if err := s.store.Put(ctx, id, data); err != nil {
			return err
		}
		*stored = append(*stored, id)
	}
	return nil
}

// discard deletes objects from storage. Failures are logged only.
func (s *RecipeService) discard(ctx context.Context, ids []string) {
	for _, id := range ids {
		if err := s.store.Delete(context.WithoutCancel(ctx), id); err != nil {
			s.logger.Warn(ctx, "orphaned picture", "id", id, "error", err)
		}
	}
}
