package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/akulagin/storefront/internal/cli"
	"github.com/akulagin/storefront/internal/config"
	"github.com/akulagin/storefront/internal/logging"
	"github.com/akulagin/storefront/internal/session"
	"github.com/akulagin/storefront/pkg/apiclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	var store session.Store
	if cfg.SessionDBPath == ":memory:" {
		store = session.NewMemStore()
	} else {
		store, err = session.Open(cfg.SessionDBPath)
		if err != nil {
			log.Fatalf("session store error: %v", err)
		}
	}

	client := apiclient.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, store, logger)
	app := cli.NewApp(client, store, logger, os.Stdin, os.Stdout)
	root := cli.New(app)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(logging.IntoContext(ctx, logger)); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
