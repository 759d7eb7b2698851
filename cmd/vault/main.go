package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err.Error()))
		return 2
	}

	log := logger.NewClientLogger("vault", cfg.Log.File)
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Str("build", info.String()).Msg("vault starting")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create storages")
		fmt.Fprintln(os.Stderr, tui.RenderError(client.UserMessage(err)))
		return 1
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.KDF, log)

	app, err := client.NewApp(
		services,
		tui.NewPrompter(os.Stdin, os.Stdout),
		platform.NewClipboard(),
		os.Stdout,
		cfg.App,
		info,
		log,
	)
	if err != nil {
		log.Err(err).Msg("init vault app")
		return 1
	}

	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return 130
		}
		log.Err(err).Strs("args", args).Msg("vault command failed")
		fmt.Fprintln(os.Stderr, tui.RenderError(client.UserMessage(err)))
		return 1
	}

	return 0
}
