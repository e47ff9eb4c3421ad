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

	"storefront/cmd"
	httpapi "storefront/internal/adapters/in/http"
	"storefront/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(configs.AppEnv, configs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err = run(configs, zapLogger); err != nil {
		zapLogger.Fatal("storefront stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, zapLogger *zap.Logger) error {
	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err = cmd.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, db, zapLogger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			zapLogger.Warn("failed to close clients", zap.Error(closeErr))
		}
	}()

	jobManager := app.Jobs()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, app, configs.HTTPPort, zapLogger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, zapLogger *zap.Logger) error {
	e := httpapi.NewEcho(httpapi.NewServer(app.HTTPHandlers(), zapLogger))
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("port", port))
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
