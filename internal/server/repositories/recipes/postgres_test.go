package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

var recipeCols = []string{"id", "name", "instructions", "needs_auth", "created_at", "updated_at", "cid", "cname"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT\s+r\.id.*FROM\s+recipe\s+r\s+JOIN\s+category\s+c\s+ON\s+c\.id\s*=\s*r\.category_id\s+ORDER\s+BY\s+r\.id$`).
		WillReturnRows(sqlmock.NewRows(recipeCols).
			AddRow(1, "Borscht", "Boil", true, now, now, 5, "Soups").
			AddRow(2, "Bread", "Bake", false, now, now, 2, "Bakery"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Borscht", got[0].Name)
	assert.Equal(t, models.Category{ID: 5, Name: "Soups"}, got[0].Category)
	assert.True(t, got[0].NeedsAuth)
	assert.False(t, got[1].NeedsAuth)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	q := `(?s)^SELECT\s+r\.id.*WHERE\s+r\.id\s*=\s*\$1$`

	mock.ExpectQuery(q).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(recipeCols).AddRow(1, "Borscht", "Boil", true, now, now, 5, "Soups"))
	mock.ExpectQuery(q).WithArgs(int64(2)).WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Category.ID)

	_, err = repo.Get(context.Background(), 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+recipe\s*\(name,\s*instructions,\s*category_id,\s*needs_auth\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`).
		WithArgs("Borscht", "Boil", int64(5), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	rec := &models.Recipe{Name: "Borscht", Instructions: "Boil", Category: models.Category{ID: 5}, NeedsAuth: true}
	got, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	later := time.Now()
	q := `(?s)^UPDATE\s+recipe\s+SET\s+name\s*=\s*\$2,\s*instructions\s*=\s*\$3,\s*category_id\s*=\s*\$4,\s*needs_auth\s*=\s*\$5,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at\s*$`

	mock.ExpectQuery(q).WithArgs(int64(3), "N", "I", int64(1), false).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(later))
	mock.ExpectQuery(q).WithArgs(int64(4), "N", "I", int64(1), false).WillReturnError(sql.ErrNoRows)

	rec := &models.Recipe{ID: 3, Name: "N", Instructions: "I", Category: models.Category{ID: 1}}
	require.NoError(t, repo.Update(context.Background(), rec))
	assert.Equal(t, later, rec.UpdatedAt)

	rec.ID = 4
	assert.ErrorIs(t, repo.Update(context.Background(), rec), common.ErrorNotFound)
}

func TestSetNeedsAuthAndDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^UPDATE\s+recipe\s+SET\s+needs_auth\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(int64(1), false).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE\s+FROM\s+recipe\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetNeedsAuth(context.Background(), 1, false))
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), common.ErrorNotFound)
}

func TestIngredients(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+i\.id,\s*i\.name,\s*ri\.quantity,\s*ri\.unit\s+FROM\s+recipe_ingredient\s+ri.*WHERE\s+ri\.recipe_id\s*=\s*\$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity", "unit"}).
			AddRow(1, "Salt", 1.5, "pinch").
			AddRow(2, "Beet", 2.0, "piece"))

	got, err := repo.Ingredients(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeIngredient{
		{Ingredient: models.Ingredient{ID: 1, Name: "Salt"}, Quantity: 1.5, Unit: "pinch"},
		{Ingredient: models.Ingredient{ID: 2, Name: "Beet"}, Quantity: 2, Unit: "piece"},
	}, got)
}

func TestReplaceIngredients(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ins := `(?s)^INSERT\s+INTO\s+recipe_ingredient\s*\(recipe_id,\s*ingredient_id,\s*quantity,\s*unit\)`

	mock.ExpectExec(`^DELETE\s+FROM\s+recipe_ingredient\s+WHERE\s+recipe_id\s*=\s*\$1$`).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(ins).WithArgs(int64(7), int64(1), 2.5, "kg").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(ins).WithArgs(int64(7), int64(2), 1.0, "cup").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceIngredients(context.Background(), 7, []models.RecipeIngredient{
		{Ingredient: models.Ingredient{ID: 1}, Quantity: 2.5, Unit: "kg"},
		{Ingredient: models.Ingredient{ID: 2}, Quantity: 1, Unit: "cup"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceIngredients_InsertFails(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+recipe_ingredient`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT\s+INTO\s+recipe_ingredient`).WillReturnError(errors.New("db down"))

	err := repo.ReplaceIngredients(context.Background(), 7, []models.RecipeIngredient{{Ingredient: models.Ingredient{ID: 1}, Quantity: 1, Unit: "kg"}})
	assert.ErrorContains(t, err, "db down")
}
