package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/payload"
	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
)

func (a *App) ListRecipes(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		list, err := a.recipes.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			a.println("No recipes yet.")
			return nil
		}
		for _, r := range list {
			lock := ""
			if r.NeedsAuth {
				lock = " [app login]"
			}
			a.printf("%5d  %-40s %s%s\n", r.ID, r.Name, r.Category.Name, lock)
		}
		return nil
	})
}

func (a *App) ShowRecipe(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "show <id>")
		if err != nil {
			return err
		}
		r, err := a.recipes.Get(ctx, id)
		if err != nil {
			return err
		}
		a.printRecipe(r)
		return nil
	})
}

func (a *App) printRecipe(r *models.Recipe) {
	a.printf("#%d %s\n", r.ID, r.Name)
	a.printf("Category: %s\n", r.Category.Name)
	a.printf("Requires app login: %t\n", r.NeedsAuth)
	a.println("Ingredients:")
	for _, ing := range r.Ingredients {
		a.printf("  - %s: %s %s\n", ing.Ingredient.Name, payload.FormatQuantity(ing.Quantity), ing.Unit)
	}
	if len(r.Pictures) > 0 {
		a.println("Pictures:")
		for i, p := range r.Pictures {
			a.printf("  %d. %s\n", i+1, p)
		}
	}
	if r.Instructions != "" {
		a.println("Instructions:")
		a.println(r.Instructions)
	}
}

// NewRecipe walks the operator through an empty form and creates the recipe.
func (a *App) NewRecipe(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		draft := &models.RecipeDraft{}
		var saved *models.Recipe
		err := a.submitDraft(ctx, draft, func(ctx context.Context) error {
			r, err := a.recipes.Create(ctx, draft)
			saved = r
			return err
		})
		if err != nil {
			return err
		}
		a.printf("Recipe saved (#%d).\n", saved.ID)
		return nil
	})
}

// EditRecipe loads a recipe into the form and submits the changes.
func (a *App) EditRecipe(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "edit <id>")
		if err != nil {
			return err
		}
		draft, err := a.recipes.LoadDraft(ctx, id)
		if err != nil {
			return err
		}
		err = a.submitDraft(ctx, draft, func(ctx context.Context) error {
			_, err := a.recipes.Update(ctx, id, draft)
			return err
		})
		if err != nil {
			return err
		}
		a.println("Recipe saved.")
		return nil
	})
}

// submitDraft fills the form and submits it. A failed submission keeps the
// draft and lets the operator edit it again, resend it, or drop it.
func (a *App) submitDraft(ctx context.Context, draft *models.RecipeDraft, submit func(ctx context.Context) error) error {
	if err := a.fillDraft(ctx, draft); err != nil {
		return err
	}
	for {
		err := submit(ctx)
		if err == nil || errors.Is(err, client.ErrUnauthorized) || ctx.Err() != nil {
			return err
		}
		a.println(services.Notify(err))

		action, rerr := a.askAfterFailure()
		if rerr != nil {
			return err
		}
		switch action {
		case "edit":
			if ferr := a.fillDraft(ctx, draft); ferr != nil {
				return ferr
			}
		case "discard":
			return errAborted
		}
	}
}

// askAfterFailure returns "edit", "retry" or "discard". Empty input edits.
func (a *App) askAfterFailure() (string, error) {
	for {
		answer, err := getSimpleText(a.reader, "Not saved: edit | retry | discard", a.out)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(answer) {
		case "", "e", "edit":
			return "edit", nil
		case "r", "retry":
			return "retry", nil
		case "d", "discard":
			return "discard", nil
		}
		a.println("Unknown answer:", answer)
	}
}

func (a *App) DeleteRecipe(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "delete <id>")
		if err != nil {
			return err
		}
		if !confirm(a.reader, a.out, fmt.Sprintf("Delete recipe #%d?", id), false) {
			return errAborted
		}
		if err := a.recipes.Delete(ctx, id); err != nil {
			return err
		}
		a.println("Recipe deleted.")
		return nil
	})
}

// ToggleAuth sets whether the mobile app must be logged in to see a recipe.
func (a *App) ToggleAuth(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		const usage = "auth <id> on|off"
		id, err := parseID(args, usage)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("%w: %s", errUsage, usage)
		}
		var on bool
		switch strings.ToLower(args[1]) {
		case "on", "true", "yes":
			on = true
		case "off", "false", "no":
		default:
			return fmt.Errorf("%w: %s", errUsage, usage)
		}
		r, err := a.recipes.SetNeedsAuth(ctx, id, on)
		if err != nil {
			return err
		}
		a.printf("Recipe #%d requires app login: %t\n", r.ID, r.NeedsAuth)
		return nil
	})
}
