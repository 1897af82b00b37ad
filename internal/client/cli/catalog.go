package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) ListIngredients(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		list, err := a.catalog.Ingredients(ctx)
		if err != nil {
			return err
		}
		units, err := a.catalog.UnitIndex(ctx)
		if err != nil {
			return err
		}
		for _, ing := range list {
			if u, ok := units[ing.ID]; ok {
				a.printf("%5d  %s (%s)\n", ing.ID, ing.Name, u)
			} else {
				a.printf("%5d  %s\n", ing.ID, ing.Name)
			}
		}
		return nil
	})
}

func (a *App) AddIngredient(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		name := strings.Join(args, " ")
		if name == "" {
			return fmt.Errorf("%w: add-ingredient <name>", errUsage)
		}
		id, err := a.catalog.CreateIngredient(ctx, name)
		if err != nil {
			return err
		}
		a.printf("Ingredient created (#%d).\n", id)
		return nil
	})
}

func (a *App) RenameIngredient(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		const usage = "rename-ingredient <id> <name>"
		id, err := parseID(args, usage)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("%w: %s", errUsage, usage)
		}
		ing, err := a.catalog.RenameIngredient(ctx, id, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		a.printf("Ingredient #%d is now %q.\n", ing.ID, ing.Name)
		return nil
	})
}

func (a *App) DeleteIngredient(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "delete-ingredient <id>")
		if err != nil {
			return err
		}
		if !confirm(a.reader, a.out, fmt.Sprintf("Delete ingredient #%d?", id), false) {
			return errAborted
		}
		if err := a.catalog.DeleteIngredient(ctx, id); err != nil {
			return err
		}
		a.println("Ingredient deleted.")
		return nil
	})
}

func (a *App) ListCategories(ctx context.Context, _ []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		list, err := a.catalog.Categories(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			a.printf("%5d  %s\n", c.ID, c.Name)
		}
		return nil
	})
}

func (a *App) AddCategory(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		name := strings.Join(args, " ")
		if name == "" {
			return fmt.Errorf("%w: add-category <name>", errUsage)
		}
		c, err := a.catalog.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		a.printf("Category created (#%d).\n", c.ID)
		return nil
	})
}

func (a *App) RenameCategory(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		const usage = "rename-category <id> <name>"
		id, err := parseID(args, usage)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("%w: %s", errUsage, usage)
		}
		c, err := a.catalog.RenameCategory(ctx, id, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		a.printf("Category #%d is now %q.\n", c.ID, c.Name)
		return nil
	})
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	return a.authorized(ctx, func(ctx context.Context) error {
		id, err := parseID(args, "delete-category <id>")
		if err != nil {
			return err
		}
		if !confirm(a.reader, a.out, fmt.Sprintf("Delete category #%d?", id), false) {
			return errAborted
		}
		if err := a.catalog.DeleteCategory(ctx, id); err != nil {
			return err
		}
		a.println("Category deleted.")
		return nil
	})
}
