package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"feedstream/backend/internal/config"
	"feedstream/backend/internal/db"
	"feedstream/backend/internal/handler"
	transport "feedstream/backend/internal/http"
	"feedstream/backend/internal/logger"
	"feedstream/backend/internal/repository"
	"feedstream/backend/internal/service"
	"feedstream/backend/internal/snowflake"
)

// @title feedstream API
// @version 1.0
// @description CRUD endpoint for feed entries in JSON and XML.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ids, err := snowflake.New(cfg.NodeID)
	if err != nil {
		logger.Error("init id generator", "module", "server", "action", "start", "resource", "snowflake", "result", "failed", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Open(cfg.DBDriver, cfg.DataSource())
	if err != nil {
		logger.Error("open database", "module", "server", "action", "start", "resource", "db", "result", "failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	store := repository.NewStore(dbConn, db.GoquDialect(cfg.DBDriver), ids)
	feedEntryService := service.NewFeedEntryService(store)

	router := transport.NewRouter(
		handler.NewFeedEntryHandler(feedEntryService),
		handler.NewHealthHandler(feedEntryService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "server", "action", "start", "resource", "http", "result", "ok", "app", config.AppName, "version", config.AppVersion, "addr", cfg.Addr, "driver", cfg.DBDriver)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "module", "server", "action", "stop", "resource", "http", "result", "ok")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "module", "server", "action", "stop", "resource", "http", "result", "failed", "error", err)
		dbConn.Close()
		os.Exit(1)
	}
}
