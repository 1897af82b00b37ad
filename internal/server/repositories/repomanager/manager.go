package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeadmin/internal/dbx"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/activations"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/admins"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/categories"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/pictures"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/recipes"
)

// RepositoryManager hands out repositories bound to a connection or a
// transaction, so services can run several of them in one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Admins(db dbx.DBTX) admins.Repository
	Categories(db dbx.DBTX) categories.Repository
	Ingredients(db dbx.DBTX) ingredients.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Pictures(db dbx.DBTX) pictures.Repository
	Activations(db dbx.DBTX) activations.Repository
}
