package recipes

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

const selectRecipe = `SELECT r.id, r.name, r.instructions, r.needs_auth, r.created_at, r.updated_at, c.id, c.name
	FROM recipe r
	JOIN category c ON c.id = r.category_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s scanner) (*models.Recipe, error) {
	r := &models.Recipe{}
	err := s.Scan(&r.ID, &r.Name, &r.Instructions, &r.NeedsAuth, &r.CreatedAt, &r.UpdatedAt, &r.Category.ID, &r.Category.Name)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, selectRecipe+` ORDER BY r.id`)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, repositories.MapError(err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, selectRecipe+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query :=
		`INSERT INTO recipe (name, instructions, category_id, needs_auth)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		`
	err := r.db.QueryRowContext(ctx, query, recipe.Name, recipe.Instructions, recipe.Category.ID, recipe.NeedsAuth).
		Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	return recipe, nil
}

// Update rewrites the editable columns and bumps updated_at.
func (r *PostgresRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	query :=
		`UPDATE recipe SET name = $2, instructions = $3, category_id = $4, needs_auth = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		`
	err := r.db.QueryRowContext(ctx, query, recipe.ID, recipe.Name, recipe.Instructions, recipe.Category.ID, recipe.NeedsAuth).
		Scan(&recipe.UpdatedAt)
	if err != nil {
		return repositories.MapError(err)
	}
	return nil
}

func (r *PostgresRepository) SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE recipe SET needs_auth = $2 WHERE id = $1`, id, needsAuth)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipe WHERE id = $1`, id)
	if err != nil {
		return repositories.MapError(err)
	}
	return repositories.RequireAffected(res)
}

func (r *PostgresRepository) Ingredients(ctx context.Context, recipeID int64) ([]models.RecipeIngredient, error) {
	query :=
		`SELECT i.id, i.name, ri.quantity, ri.unit
		 FROM recipe_ingredient ri
		 JOIN ingredient i ON i.id = ri.ingredient_id
		 WHERE ri.recipe_id = $1
		 ORDER BY ri.id
		`
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, repositories.MapError(err)
	}
	defer rows.Close()

	out := []models.RecipeIngredient{}
	for rows.Next() {
		var ri models.RecipeIngredient
		if err := rows.Scan(&ri.Ingredient.ID, &ri.Ingredient.Name, &ri.Quantity, &ri.Unit); err != nil {
			return nil, repositories.MapError(err)
		}
		out = append(out, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.MapError(err)
	}
	return out, nil
}

// ReplaceIngredients drops every line of the recipe and inserts items in
// order. Callers run it inside a transaction.
func (r *PostgresRepository) ReplaceIngredients(ctx context.Context, recipeID int64, items []models.RecipeIngredient) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipe_ingredient WHERE recipe_id = $1`, recipeID); err != nil {
		return repositories.MapError(err)
	}

	query :=
		`INSERT INTO recipe_ingredient (recipe_id, ingredient_id, quantity, unit)
		 VALUES ($1, $2, $3, $4)
		`
	for _, it := range items {
		if _, err := r.db.ExecContext(ctx, query, recipeID, it.Ingredient.ID, it.Quantity, it.Unit); err != nil {
			return repositories.MapError(err)
		}
	}
	return nil
}

