package ingredients

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM ingredient ORDER BY id`)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.Ingredient{}
	for rows.Next() {
		var i models.Ingredient
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, repositories.MapError(err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	i := &models.Ingredient{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM ingredient WHERE id = $1`, id).Scan(&i.ID, &i.Name)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return i, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name string) (*models.Ingredient, error) {
	i := &models.Ingredient{Name: name}
	err := r.db.QueryRowContext(ctx, `INSERT INTO ingredient (name) VALUES ($1) RETURNING id`, name).Scan(&i.ID)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return i, nil
}

func (r *PostgresRepository) Rename(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	i := &models.Ingredient{}
	query :=
		`UPDATE ingredient SET name = $2
		 WHERE id = $1
		 RETURNING id, name
		`
	if err := r.db.QueryRowContext(ctx, query, id, name).Scan(&i.ID, &i.Name); err != nil {
		return nil, repositories.MapError(err)
	}
	return i, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredient WHERE id = $1`, id)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM ingredient WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, repositories.MapError(err)
	}
	return ok, nil
}

func (r *PostgresRepository) ListUnits(ctx context.Context) ([]models.IngredientUnit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ingredient_id, unit FROM ingredient_unit ORDER BY ingredient_id`)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.IngredientUnit{}
	for rows.Next() {
		var u models.IngredientUnit
		if err := rows.Scan(&u.IngredientID, &u.Unit); err != nil {
			return nil, repositories.MapError(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

// UpsertUnit records unit as the last unit used with ingredient id.
func (r *PostgresRepository) UpsertUnit(ctx context.Context, id int64, unit string) error {
	query :=
		`INSERT INTO ingredient_unit (ingredient_id, unit)
		 VALUES ($1, $2)
		 ON CONFLICT (ingredient_id) DO UPDATE SET unit = EXCLUDED.unit
		`
	if _, err := r.db.ExecContext(ctx, query, id, unit); err != nil {
		return repositories.MapError(err)
	}
	return nil
}
