package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/poc-httpclient/internal/app"
	"github.com/samvad-hq/poc-httpclient/internal/config"
	"github.com/samvad-hq/poc-httpclient/internal/logger"
	"github.com/samvad-hq/poc-httpclient/internal/report"
	"github.com/samvad-hq/poc-httpclient/internal/storage"
	"github.com/samvad-hq/poc-httpclient/pkg/clients"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pocclient start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("pocclient starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, err := app.BuildRegistry(cfg, clients.Options{Logger: log})
	if err != nil {
		logger.ErrorObj("failed to build client registry", "error", err)
		return err
	}

	store, err := storage.NewStore(cfg.HistoryType, cfg.HistoryPath, storage.Options{})
	if err != nil {
		return fmt.Errorf("init history: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorObj("history close failed", "error", err)
		}
	}()

	out := report.New(os.Stdout, cfg.NoColor)
	demo, err := app.NewDemo(cfg, reg, out, store, log)
	if err != nil {
		return fmt.Errorf("init demo: %w", err)
	}

	demo.Run(ctx)

	if cfg.WaitForEnter {
		out.Line("Hit any key...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}
