package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"batepapo/internal/adapters/rest"
	"batepapo/internal/application"
	"batepapo/internal/config"
	"batepapo/internal/infrastructure/i18n"
	"batepapo/internal/infrastructure/storage"
	"batepapo/pkg/logs"
	"batepapo/pkg/tz"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "batepapo terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)
	location, err := tz.Load(cfg.TimeZone)
	if err != nil {
		return exitConfig, err
	}
	if !strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("store: %w", err)
	}
	defer func() {
		logger.Info("Closing store")
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", "err", err)
		}
	}()

	translator := i18n.NewTranslator(cfg.Locale, logger)
	messageUC := application.NewMessageService(store.Messages, location)
	participantUC := application.NewParticipantService(store.Participants, messageUC, logger)
	reaper := application.NewReaper(store.Participants, messageUC, cfg.ReaperInterval, cfg.InactivityThreshold, logger)

	handler := rest.NewHandler(participantUC, messageUC, translator, store.Participants, cfg.Locale, logger)
	server, err := rest.NewServer(cfg.HTTPAddr, cfg.CORSAllowOrigin, cfg.ShutdownTimeout, handler, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("http server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return reaper.Run(gctx) })
	g.Go(func() error { return server.Run(gctx) })
	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}

	logger.Info("batepapo stopped")
	return exitOK, nil
}
