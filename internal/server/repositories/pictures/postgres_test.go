package pictures

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByRecipe(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+id\s+FROM\s+picture\s+WHERE\s+recipe_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*id$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1").AddRow("p2"))

	ids, err := repo.ListByRecipe(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByRecipe error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+picture\s*\(id,\s*recipe_id,\s*size\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`).
		WithArgs("p1", int64(3), int64(1024)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), &models.Picture{ID: "p1", RecipeID: 3, Size: 1024}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestExistsAndDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+picture\s+WHERE\s+id\s*=\s*\$1\)$`).
		WithArgs("p1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`^DELETE\s+FROM\s+picture\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE\s+FROM\s+picture`).
		WithArgs("p2").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Exists(context.Background(), "p1")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), "p2"); err != common.ErrorNotFound {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
