package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"luxemarket/internal/config"
	"luxemarket/internal/http/handlers"
	applog "luxemarket/internal/log"
	"luxemarket/internal/metrics"
	"luxemarket/internal/repos"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		applog.Logger().Error("application failed", "error", err)
		os.Exit(1)
	}
	applog.Logger().Info("application stopped")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	var out io.Writer = os.Stdout
	jsonLogs := cfg.LogJSON
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()
		out = io.MultiWriter(os.Stdout, f)
		jsonLogs = true
	}
	log := applog.Setup(out, cfg.Level(), jsonLogs)
	log.Info("config loaded", slog.Any("config", cfg))

	cat, err := repos.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", slog.Int("products", cat.Len()))

	db, err := repos.OpenDB(cfg.FavoritesDSN)
	if err != nil {
		return fmt.Errorf("open favorites db: %w", err)
	}
	defer db.Close()

	m := metrics.New()
	deps := handlers.NewDeps(db, cfg, cat, m, log)
	defer deps.Runner.Close()

	app := handlers.NewApp(cfg, deps, m)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", slog.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			return fmt.Errorf("app.Listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("app.Shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
