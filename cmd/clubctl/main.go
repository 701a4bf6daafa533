package main

import (
	"fmt"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/client"
	"github.com/clubops/clubkit/internal/config"
	"github.com/clubops/clubkit/internal/logger"
	"github.com/clubops/clubkit/internal/service"
	"github.com/clubops/clubkit/internal/session"
	"github.com/clubops/clubkit/internal/tui"
	"github.com/clubops/clubkit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleAppLogger("clubctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessionStore, err := session.NewFileStore(cfg.Storage.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	clubAdapter, err := adapter.NewHTTPClubAdapter(adapter.Config{
		BaseURL:        cfg.Adapter.BackendURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, sessionStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	expired := make(chan struct{}, 1)
	services := service.NewServices(clubAdapter, func() {
		select {
		case expired <- struct{}{}:
		default:
		}
	})

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, cfg.Storage.DownloadDir, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, expired, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
