package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// IngredientCreator creates an ingredient by name and returns its new id.
type IngredientCreator interface {
	CreateIngredient(ctx context.Context, name string) (int64, error)
}

// IngredientResolver turns every ingredient line into a concrete id,
// creating the ingredients the operator typed in.
type IngredientResolver struct {
	creator IngredientCreator
	logger  logging.Logger
}

func NewIngredientResolver(creator IngredientCreator, logger logging.Logger) *IngredientResolver {
	return &IngredientResolver{creator: creator, logger: logger.With("module", "resolver")}
}

// Resolve processes lines in order. Every line is validated before the
// first creation, so an invalid line never leaves ingredients behind.
// Creations run one at a time, so the server assigns ids in the order the
// lines appear. The first failed creation aborts the pass; ingredients
// created before it are not rolled back. Output order equals input order.
func (r *IngredientResolver) Resolve(ctx context.Context, lines []models.IngredientLine) ([]models.ResolvedIngredient, error) {
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("%w: ingredient line %d: %w", ErrValidation, i+1, err)
		}
	}

	out := make([]models.ResolvedIngredient, 0, len(lines))
	for i, line := range lines {
		var id int64
		switch line.Ref.Kind() {
		case models.RefExisting:
			id = line.Ref.ID()
		case models.RefRaw:
			id, _ = line.Ref.RawID()
		case models.RefNew:
			created, err := r.creator.CreateIngredient(ctx, line.Ref.Name())
			if err != nil {
				r.logger.Warn(ctx, "ingredient creation failed", "name", line.Ref.Name(), "line", i+1, "error", err)
				return nil, fmt.Errorf("%w: %q: %w", ErrDependencyCreation, line.Ref.Name(), err)
			}
			r.logger.Debug(ctx, "ingredient created", "name", line.Ref.Name(), "id", created)
			id = created
		}

		out = append(out, models.ResolvedIngredient{ID: id, Quantity: *line.Quantity, Unit: line.Unit})
	}
	return out, nil
}
