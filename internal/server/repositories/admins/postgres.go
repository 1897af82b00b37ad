// Package admins stores operator accounts of the admin API.
package admins

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

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	query :=
		`INSERT INTO admin_account (admin_login, admin_password_hash, admin_role)
		 VALUES ($1, $2, $3)
		 RETURNING id
		`

	err := r.db.QueryRowContext(ctx, query, admin.Login, admin.PasswordHash, admin.Role).Scan(&admin.ID)
	if err != nil {
		return nil, repositories.MapError(err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.Admin, error) {
	query :=
		`SELECT id, admin_login, admin_password_hash, admin_role FROM admin_account
		 WHERE admin_login = $1
		`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&admin.ID, &admin.Login, &admin.PasswordHash, &admin.Role)
	if err != nil {
		return nil, repositories.MapError(err)
	}

	return admin, nil
}

func (r *PostgresRepository) SetPassword(ctx context.Context, login, passwordHash string) error {
	query :=
		`UPDATE admin_account SET admin_password_hash = $2
		 WHERE admin_login = $1
		`

	res, err := r.db.ExecContext(ctx, query, login, passwordHash)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}
