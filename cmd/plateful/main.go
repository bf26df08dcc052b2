package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/config"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/http"
	"github.com/plateful/plateful/internal/log"
	"github.com/plateful/plateful/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil)

	httpConfig := http.DefaultConfig()
	httpConfig.Logger = logger
	http := http.New(httpConfig)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fs, err := setup.FileStore(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup file store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	e := env.New(map[string]string{
		"ENV":                conf.Env,
		"APP_SECRET":         string(*conf.AppSecret.Value),
		"APP_SECRET_VERSION": conf.AppSecret.Version,
		"HOST_ORIGIN":        conf.HostOrigin,
		"PORT":               fmt.Sprintf("%d", conf.Port),
		"MEDIA_VOLUME":       conf.Media.Volume,
		"MEDIA_URL_PREFIX":   conf.Media.URLPrefix,
		"S3_ENDPOINT":        conf.S3.Endpoint,
	})
	e.Logger = logger
	e.Database = db
	e.FileStore = fs
	e.HTTP = http

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, e, conf); err != nil {
		logger.Error("failed to setup admin", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(e); err != nil {
		e.Logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
