package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/frontend-console/internal/adapter"
	"github.com/MKhiriev/frontend-console/internal/config"
	"github.com/MKhiriev/frontend-console/internal/console"
	handler "github.com/MKhiriev/frontend-console/internal/handler/http"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/internal/metrics"
	"github.com/MKhiriev/frontend-console/internal/server"
	"github.com/MKhiriev/frontend-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("frontend-console-web")
	cfg, err := config.GetWebConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	recorder := metrics.NewRecorder()

	frontendAdapter, err := adapter.NewHTTPFrontendAdapter(cfg.Adapter, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating frontends adapter")
	}

	page := console.NewPage(frontendAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	h, err := handler.NewHandler(page, recorder, buildInfo, cfg.Server.MaxUploadSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handler")
	}

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
