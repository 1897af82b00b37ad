package activations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*activation_code,\s*activations_limit,\s*expires_at,\s*description,\s*created_at\s+FROM\s+app_activation`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activation_code", "activations_limit", "expires_at", "description", "created_at"}).
			AddRow(2, "123456789012345", 10, now.Add(24*time.Hour), "promo", now).
			AddRow(1, "000000000000001", 1, now, nil, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "promo", got[0].Description)
	assert.Equal(t, "", got[1].Description)
	assert.Equal(t, 10, got[0].ActivationsLimit)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	q := `(?s)^INSERT\s+INTO\s+app_activation\s*\(activation_code,\s*activations_limit,\s*expires_at,\s*description,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id\s*$`
	a := &models.Activation{ActivationCode: "111", ActivationsLimit: 3, ExpiresAt: now.Add(time.Hour), Description: "d", CreatedAt: now}

	mock.ExpectQuery(q).WithArgs("111", 3, a.ExpiresAt, "d", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(q).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)

	_, err = repo.Create(context.Background(), a)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.Create(context.Background(), a)
	assert.ErrorContains(t, err, "db error")
}
