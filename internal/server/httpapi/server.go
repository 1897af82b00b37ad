// Package httpapi exposes the recipe services over HTTP. All routes live
// under /admin and, except login and picture downloads, require a bearer
// token.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/dmitrijs2005/recipeadmin/internal/server/config"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

type AdminService interface {
	Login(ctx context.Context, login, password string) (string, error)
	Authorize(ctx context.Context, token string) (*models.Admin, error)
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error)
	RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
	IngredientUnits(ctx context.Context) ([]models.IngredientUnit, error)
}

type RecipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	Create(ctx context.Context, in services.RecipeInput) (*models.Recipe, error)
	Update(ctx context.Context, id int64, in services.RecipeInput) (*models.Recipe, error)
	SetNeedsAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error)
	Delete(ctx context.Context, id int64) error
	PictureURL(ctx context.Context, id string) (string, error)
}

type ActivationService interface {
	List(ctx context.Context) ([]models.Activation, error)
	Create(ctx context.Context, req services.ActivationRequest) (*models.Activation, error)
}

type Server struct {
	address         string
	maxUpload       int64
	allowedOrigins  []string
	shutdownTimeout time.Duration

	admins      AdminService
	catalog     CatalogService
	recipes     RecipeService
	activations ActivationService
	logger      logging.Logger
}

func NewServer(cfg *config.Config, l logging.Logger, as AdminService, cs CatalogService, rs RecipeService, acs ActivationService) *Server {
	return &Server{
		address:         cfg.ListenAddr,
		maxUpload:       cfg.MaxUploadBytes,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: 10 * time.Second,
		admins:          as,
		catalog:         cs,
		recipes:         rs,
		activations:     acs,
		logger:          l.With("module", "http_server"),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), cors.New(s.corsConfig()))

	api := r.Group("/admin")
	api.POST("/auth/login", s.login)
	api.GET("/pictures/:id", s.picture)

	editor := api.Group("", s.requireAuth(), s.requireRole(roleEditor))
	editor.GET("/categories", s.listCategories)
	editor.POST("/categories", s.createCategory)
	editor.GET("/categories/:id", s.getCategory)
	editor.PUT("/categories/:id", s.renameCategory)
	editor.DELETE("/categories/:id", s.deleteCategory)

	editor.GET("/ingredients", s.listIngredients)
	editor.POST("/ingredients", s.createIngredient)
	editor.GET("/ingredients/units", s.ingredientUnits)
	editor.GET("/ingredients/:id", s.getIngredient)
	editor.PUT("/ingredients/:id", s.renameIngredient)
	editor.DELETE("/ingredients/:id", s.deleteIngredient)

	editor.GET("/recipes", s.listRecipes)
	editor.POST("/recipes", s.createRecipe)
	editor.GET("/recipes/:id", s.getRecipe)
	editor.PUT("/recipes/:id", s.updateRecipe)
	editor.DELETE("/recipes/:id", s.deleteRecipe)
	editor.PUT("/recipes/:id/change-auth", s.changeRecipeAuth)

	manager := api.Group("/auth/app-activations", s.requireAuth(), s.requireRole(roleManager))
	manager.GET("", s.listActivations)
	manager.POST("", s.createActivation)
	manager.POST("/create-code", s.createActivation)

	return r
}

func (s *Server) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range s.allowedOrigins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = s.allowedOrigins
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}

// Run serves until ctx is cancelled, then shuts down gracefully and returns
// once in-flight requests have finished.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
