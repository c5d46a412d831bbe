package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/denidash/internal/buildinfo"
	"github.com/dmitrijs2005/denidash/internal/client/cli"
	"github.com/dmitrijs2005/denidash/internal/client/config"
	"github.com/dmitrijs2005/denidash/internal/client/storage"
	"github.com/dmitrijs2005/denidash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	db, err := storage.OpenDatabase(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	app, err := cli.NewApp(cfg, db, os.Stdin, os.Stdout, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
