package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/recipeadmin/internal/buildinfo"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
	"github.com/dmitrijs2005/recipeadmin/internal/server"
	"github.com/dmitrijs2005/recipeadmin/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
