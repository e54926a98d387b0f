package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jeomhps/hbnb-api/internal/config"
	"github.com/Jeomhps/hbnb-api/internal/logger"
	"github.com/Jeomhps/hbnb-api/internal/router"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/Jeomhps/hbnb-api/internal/storage/db"
	"github.com/Jeomhps/hbnb-api/internal/storage/file"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.Env)

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.TypeStorage).Msg("open storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("close storage")
		}
	}()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(store, log, router.Options{CORSOrigins: cfg.CORSOrigins, Gzip: cfg.Gzip}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Info().Str("addr", srv.Addr).Str("engine", cfg.TypeStorage).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.TypeStorage {
	case "db":
		return db.Open(cfg.DSN())
	default:
		return file.Open(cfg.FilePath)
	}
}
