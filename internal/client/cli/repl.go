package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	ListRecipes(ctx context.Context, args []string) error
	ShowRecipe(ctx context.Context, args []string) error
	NewRecipe(ctx context.Context, args []string) error
	EditRecipe(ctx context.Context, args []string) error
	DeleteRecipe(ctx context.Context, args []string) error
	ToggleAuth(ctx context.Context, args []string) error
	ListIngredients(ctx context.Context, args []string) error
	AddIngredient(ctx context.Context, args []string) error
	RenameIngredient(ctx context.Context, args []string) error
	DeleteIngredient(ctx context.Context, args []string) error
	ListCategories(ctx context.Context, args []string) error
	AddCategory(ctx context.Context, args []string) error
	RenameCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
	ListActivations(ctx context.Context, args []string) error
	AddActivationCode(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, help, exit"
	helpLoggedIn  = `Available commands:
  recipes | ls                  list recipes
  show <id>                     show a recipe
  new                           create a recipe
  edit <id>                     edit a recipe
  delete <id>                   delete a recipe
  auth <id> on|off              require app login for a recipe
  ingredients                   list ingredients
  add-ingredient <name>         create an ingredient
  rename-ingredient <id> <name>
  delete-ingredient <id>
  categories                    list categories
  add-category <name>
  rename-category <id> <name>
  delete-category <id>
  activations                   list app activation codes
  add-code                      issue an app activation code
  logout, help, exit`
)

// runREPL reads commands line by line and dispatches them to a. It returns
// on EOF or on "exit"/"quit". Handlers report their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("recipes %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "recipes", "ls":
			_ = a.ListRecipes(ctx, args)
		case "show":
			_ = a.ShowRecipe(ctx, args)
		case "new":
			_ = a.NewRecipe(ctx, args)
		case "edit":
			_ = a.EditRecipe(ctx, args)
		case "delete":
			_ = a.DeleteRecipe(ctx, args)
		case "auth":
			_ = a.ToggleAuth(ctx, args)
		case "ingredients":
			_ = a.ListIngredients(ctx, args)
		case "add-ingredient":
			_ = a.AddIngredient(ctx, args)
		case "rename-ingredient":
			_ = a.RenameIngredient(ctx, args)
		case "delete-ingredient":
			_ = a.DeleteIngredient(ctx, args)
		case "categories":
			_ = a.ListCategories(ctx, args)
		case "add-category":
			_ = a.AddCategory(ctx, args)
		case "rename-category":
			_ = a.RenameCategory(ctx, args)
		case "delete-category":
			_ = a.DeleteCategory(ctx, args)
		case "activations":
			_ = a.ListActivations(ctx, args)
		case "add-code":
			_ = a.AddActivationCode(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
