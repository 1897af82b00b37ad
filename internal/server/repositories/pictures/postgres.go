package pictures

import (
	"context"

	"github.com/dmitrijs2005/recipeadmin/internal/dbx"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByRecipe returns picture ids of the recipe in upload order.
func (r *PostgresRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM picture WHERE recipe_id = $1 ORDER BY created_at, id`, recipeID)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repositories.MapError(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return ids, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM picture WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, repositories.MapError(err)
	}
	return ok, nil
}

func (r *PostgresRepository) Create(ctx context.Context, pic *models.Picture) error {
	query :=
		`INSERT INTO picture (id, recipe_id, size)
		 VALUES ($1, $2, $3)
		`
	if _, err := r.db.ExecContext(ctx, query, pic.ID, pic.RecipeID, pic.Size); err != nil {
		return repositories.MapError(err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM picture WHERE id = $1`, id)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}
