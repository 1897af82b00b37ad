package categories

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM category ORDER BY id`)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, repositories.MapError(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM category WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name string) (*models.Category, error) {
	c := &models.Category{Name: name}
	err := r.db.QueryRowContext(ctx, `INSERT INTO category (name) VALUES ($1) RETURNING id`, name).Scan(&c.ID)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return c, nil
}

func (r *PostgresRepository) Rename(ctx context.Context, id int64, name string) (*models.Category, error) {
	c := &models.Category{}
	query :=
		`UPDATE category SET name = $2
		 WHERE id = $1
		 RETURNING id, name
		`
	if err := r.db.QueryRowContext(ctx, query, id, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, repositories.MapError(err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}
