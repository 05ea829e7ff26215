package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avolkov/order-status/internal/airtable"
	"github.com/avolkov/order-status/internal/config"
	"github.com/avolkov/order-status/internal/httpapi"
	"github.com/avolkov/order-status/internal/observability"
	"github.com/avolkov/order-status/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewInmem(100)

	source := airtable.New(airtable.Config{
		BaseURL:          cfg.Airtable.BaseURL,
		APIKey:           cfg.Airtable.APIKey,
		BaseID:           cfg.Airtable.BaseID,
		Table:            cfg.Airtable.Table,
		OrderNumberField: cfg.Airtable.OrderNumberField,
		PhoneNumberField: cfg.Airtable.PhoneNumberField,
	}, logger)

	st, err := store.New(source, store.Options{
		TrustCachedPhone: cfg.TrustCachedPhone,
		RecentCap:        cfg.RecentCap,
	}, logger, metrics)
	if err != nil {
		logger.Fatal("store init failed", zap.Error(err))
	}

	api := httpapi.New(st, logger, metrics)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
