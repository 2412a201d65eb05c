package main

import (
	"context"
	"fmt"

	"github.com/statravel/sta/internal/config"
	handlerhttp "github.com/statravel/sta/internal/handler/http"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/server"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.Repositories{
		UserRepository: store.NewUserRepository(db, log),
		TripRepository: store.NewTripRepository(db, log),
	}
	services := service.NewServices(repositories, cfg, nil, log)

	handler := handlerhttp.NewHandler(handlerhttp.Deps{
		Tokens:   services.AuthService,
		Services: services,
	}, log)

	srv, err := server.NewServer(handler.InitAuthRouter(), cfg.Server, log)
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
