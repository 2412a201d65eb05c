package main

import (
	"context"
	"fmt"

	"github.com/statravel/sta/internal/catalog"
	"github.com/statravel/sta/internal/config"
	handlerhttp "github.com/statravel/sta/internal/handler/http"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/internal/server"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/store"
	"github.com/statravel/sta/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("flights")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	mongo, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to mongo")
	}
	defer func() { _ = mongo.Close(ctx) }()

	loader, err := catalog.NewMinioLoader(cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog loader")
	}

	flights := catalog.NewFlightCatalog(loader, log)
	if err := flights.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading flight catalog")
	}

	manager := reservation.NewManager(
		store.NewInventoryRepository(mongo, log),
		store.NewBookingRepository(mongo, log),
		store.NewMongoTxRunner(mongo, log),
		flights,
		utils.NewRefGenerator(),
		log,
	)

	handler := handlerhttp.NewHandler(handlerhttp.Deps{
		Tokens:       service.NewTokenParser(cfg.App),
		Reservations: manager,
		Flights:      flights,
	}, log)

	srv, err := server.NewServer(handler.InitFlightsRouter(), cfg.Server, log)
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
