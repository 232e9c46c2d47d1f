package main

import (
	"context"
	"embed"
	"flag"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/config"
	"github.com/user/plant_plotter_go/internal/logging"
	"github.com/user/plant_plotter_go/internal/viewer"
	"github.com/user/plant_plotter_go/internal/viewer/window"
)

//go:embed all:frontend/public
var assets embed.FS

func main() {
	cfg, err := config.Parse(os.Args[1:], logging.ConfigFromEnv())
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logging.New(logging.ConfigFromEnv()).Error(context.Background(), "invalid configuration", logging.Err(err))
		os.Exit(2)
	}
	log := logging.New(cfg.Log).With(logging.String("variant", cfg.Variant))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, newViewer(cfg, log)); err != nil {
		log.Error(ctx, "plot failed", logging.Err(err))
		stop()
		os.Exit(1)
	}
}

func newViewer(cfg config.Config, log logging.Logger) viewer.Viewer {
	switch cfg.Viewer {
	case config.ViewerWebview:
		return newWebview(log)
	case config.ViewerNone:
		return viewer.Headless{Logger: log}
	default:
		return window.New()
	}
}
