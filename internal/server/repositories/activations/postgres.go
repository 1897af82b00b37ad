package activations

import (
	"context"
	"database/sql"

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Activation, error) {
	query :=
		`SELECT id, activation_code, activations_limit, expires_at, description, created_at
		 FROM app_activation
		 ORDER BY created_at DESC, id DESC
		`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.Activation{}
	for rows.Next() {
		var (
			a    models.Activation
			desc sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.ActivationCode, &a.ActivationsLimit, &a.ExpiresAt, &desc, &a.CreatedAt); err != nil {
			return nil, repositories.MapError(err)
		}
		a.Description = desc.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Activation) (*models.Activation, error) {
	query :=
		`INSERT INTO app_activation (activation_code, activations_limit, expires_at, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		`
	err := r.db.QueryRowContext(ctx, query, a.ActivationCode, a.ActivationsLimit, a.ExpiresAt, a.Description, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return a, nil
}
