package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/adapters/storage/sqlite"
	"pet-store/internal/platform/config"
	"pet-store/internal/platform/logger"
	"pet-store/internal/platform/metrics"
	"pet-store/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pet-store: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		DB:      db,
		Logger:  log,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "db_driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped", nil)
	return nil
}

// openDB devuelve nil para el driver memory.
func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	var (
		db     *sql.DB
		schema []string
		err    error
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err = pg.Open(cfg.DBDSN)
		schema = pg.Schema
	case config.DriverSQLite:
		db, err = sqlite.Open(cfg.DBDSN)
		schema = sqlite.Schema
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBMigrate {
		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := pg.Migrate(migrateCtx, db, schema); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate %s: %w", cfg.DBDriver, err)
		}
	}

	return db, nil
}
