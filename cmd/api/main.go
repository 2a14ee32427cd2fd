package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/stockroom/internal/config"
	"github.com/MrJamesThe3rd/stockroom/internal/database"
	stockroomHttp "github.com/MrJamesThe3rd/stockroom/internal/http"
	ledgerHandler "github.com/MrJamesThe3rd/stockroom/internal/http/ledger"
	countHandler "github.com/MrJamesThe3rd/stockroom/internal/http/stockcount"
	uomHandler "github.com/MrJamesThe3rd/stockroom/internal/http/uom"
	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/stockroom/internal/ledger/store"
	"github.com/MrJamesThe3rd/stockroom/internal/metrics"
	"github.com/MrJamesThe3rd/stockroom/internal/notify"
	"github.com/MrJamesThe3rd/stockroom/internal/refnum"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
	countStore "github.com/MrJamesThe3rd/stockroom/internal/stockcount/store"
	"github.com/MrJamesThe3rd/stockroom/internal/uom"
	uomStore "github.com/MrJamesThe3rd/stockroom/internal/uom/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	m := metrics.New("stockroom")

	notifier := notify.Select(cfg.KafkaConfig(), notify.NewLogNotifier(logger), logger)
	defer func() {
		if err := notify.Close(notifier); err != nil {
			slog.Error("failed to close kafka writer", "error", err)
		}
	}()

	opts := stockroomHttp.Options{
		Timeout:     cfg.Server.Timeout,
		CORSOrigins: cfg.Server.CORSOrigins,
		JWTSecret:   cfg.Auth.JWTSecret,
		Metrics:     m,
		DB:          db,
	}

	if kn, ok := notifier.(*notify.KafkaNotifier); ok {
		opts.Events = kn
	} else {
		slog.Info("no kafka brokers configured, ledger events go to the log")
	}

	var (
		ledgerService = ledger.NewService(
			ledgerStore.New(db),
			refnum.NewGenerator(logger),
			ledger.WithNotifier(notifier),
			ledger.WithMetrics(m),
			ledger.WithLogger(logger),
			ledger.WithNotifyTimeout(cfg.Kafka.SendTimeout),
		)
		countService = stockcount.NewService(countStore.New(db), ledgerService).WithMetrics(m)
		uomService   = uom.NewService(uomStore.New(db))
	)

	router := stockroomHttp.New(
		opts,
		ledgerHandler.NewHandler(ledgerService),
		countHandler.NewHandler(countService, cfg.Ledger.WriteOffThreshold),
		uomHandler.NewHandler(uomService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
