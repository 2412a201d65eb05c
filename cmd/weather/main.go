package main

import (
	"context"
	"fmt"

	"github.com/statravel/sta/internal/catalog"
	"github.com/statravel/sta/internal/config"
	handlerhttp "github.com/statravel/sta/internal/handler/http"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("weather")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	loader, err := catalog.NewMinioLoader(cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog loader")
	}

	weather := catalog.NewWeatherCatalog(loader, log)
	if err := weather.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading weather catalog")
	}

	handler := handlerhttp.NewHandler(handlerhttp.Deps{
		Weather: weather,
	}, log)

	srv, err := server.NewServer(handler.InitWeatherRouter(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
