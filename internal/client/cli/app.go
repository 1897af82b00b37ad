package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/config"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

type authService interface {
	Login(ctx context.Context, username, password string) (*services.Session, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*services.Session, error)
	LastUsername(ctx context.Context) string
	Check(ctx context.Context) bool
	Authorize(ctx context.Context) (context.Context, error)
	HandleError(ctx context.Context, err error) bool
}

type recipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	LoadDraft(ctx context.Context, id int64) (*models.RecipeDraft, error)
	Create(ctx context.Context, draft *models.RecipeDraft) (*models.Recipe, error)
	Update(ctx context.Context, id int64, draft *models.RecipeDraft) (*models.Recipe, error)
	Delete(ctx context.Context, id int64) error
	SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error)
}

type catalogService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	Ingredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) (int64, error)
	RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
	UnitIndex(ctx context.Context) (models.UnitIndex, error)
}

type activationService interface {
	List(ctx context.Context) ([]models.Activation, error)
	Create(ctx context.Context, limit, expiresInDays int, description string) (*models.Activation, error)
}

// App is the console: it owns the input reader, the output writer and the
// services commands call into.
type App struct {
	config      *config.Config
	reader      *bufio.Reader
	out         io.Writer
	logger      logging.Logger
	auth        authService
	recipes     recipeService
	catalog     catalogService
	activations activationService
	closeFn     func() error
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, cfg.StateDB)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	api, err := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	if err != nil {
		repos.Close()
		return nil, err
	}

	return &App{
		config:      cfg,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		logger:      logger.With("module", "cli"),
		auth:        services.NewAuthService(api, repos.Metadata, cfg.ServerURL, logger),
		recipes:     services.NewRecipeService(api, logger),
		catalog:     services.NewCatalogService(api),
		activations: services.NewActivationService(api),
		closeFn:     repos.Close,
	}, nil
}

// Run blocks in the REPL until the operator exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closeFn != nil {
			if err := a.closeFn(); err != nil {
				a.logger.Error(ctx, "close session store", "error", err)
			}
		}
	}()

	a.println("Recipe admin console (type 'help' for commands)")
	a.println("Server:", a.config.ServerURL)
	if !a.auth.Check(ctx) {
		a.println("You are not logged in. Use 'login' first.")
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Check(context.Background())
}

func (a *App) status() string {
	s, err := a.auth.Session(context.Background())
	if err != nil || !a.auth.Check(context.Background()) {
		return "(not logged in)"
	}
	if s.Role != "" {
		return fmt.Sprintf("(%s, %s)", s.Username, s.Role)
	}
	return fmt.Sprintf("(%s)", s.Username)
}

var errAborted = errors.New("aborted")

// authorized runs fn with the session token attached and prints the outcome
// of a failure. A rejected token is dropped so the next command asks for a
// fresh login.
func (a *App) authorized(ctx context.Context, fn func(ctx context.Context) error) error {
	actx, err := a.auth.Authorize(ctx)
	if err != nil {
		a.println(services.Notify(err))
		return err
	}

	err = fn(actx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errAborted):
		a.println("Nothing saved.")
		return nil
	case errors.Is(err, errUsage):
		a.println(err.Error())
		return err
	}

	a.logger.Debug(ctx, "command failed", "error", err)
	a.auth.HandleError(ctx, err)
	a.println(services.Notify(err))
	return err
}
