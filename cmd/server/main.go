package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/oyou-server/internal/adapter"
	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/handler/http"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/server"
	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const closeTimeout = 10 * time.Second

func main() {
	log := logger.NewLogger("oyou-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !log.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := storages.Close(closeCtx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	searchAdapter, err := adapter.NewHTTPSearchAdapter(cfg.Search, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating search adapter")
	}

	services, err := service.NewServices(storages, searchAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := http.NewHandler(services, cfg.Server, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
