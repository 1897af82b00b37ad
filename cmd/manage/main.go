package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipeadmin/internal/flagx"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/dmitrijs2005/recipeadmin/internal/server/config"
	"github.com/dmitrijs2005/recipeadmin/internal/server/manage"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeadmin/internal/server/services"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	tool := manage.NewTool(os.Stdout,
		func(ctx context.Context) error { return rm.RunMigrations(ctx, db) },
		services.NewAdminService(db, rm, cfg),
		services.NewCatalogService(db, rm),
		services.DefaultCategories,
		logger,
	)

	args := flagx.Positional(os.Args[1:], append(config.KnownFlags, "-c", "-config"))
	if err := tool.Run(ctx, args); err != nil {
		if !errors.Is(err, manage.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		db.Close()
		os.Exit(1)
	}

}
