package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/spacepage/spacepage/internal/config"
	"github.com/spacepage/spacepage/internal/fetcher"
	"github.com/spacepage/spacepage/internal/persist"
	"github.com/spacepage/spacepage/internal/pipeline"
	"github.com/spacepage/spacepage/internal/scheduler"
	"github.com/spacepage/spacepage/internal/server"
	"github.com/spacepage/spacepage/internal/status"
	"github.com/spacepage/spacepage/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	outPath := cfg.ReadmePath
	if outPath == "" {
		outPath, err = persist.DefaultPath()
		if err != nil {
			slog.Error("failed to resolve output path", "error", err)
			os.Exit(1)
		}
	}

	var archive store.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)

		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			cancel()
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		cancel()

		pg := store.NewPostgres(db)
		if err := pg.Migrate(context.Background()); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		archive = pg
	}

	tracker := status.New()
	f := fetcher.New(cfg)
	p := pipeline.New(f, archive, tracker, outPath, cfg.GitHubRepository)

	// Run once immediately in both modes.
	slog.Info("running initial pipeline", "mode", cfg.RunMode, "output", outPath)
	if err := p.Run(context.Background()); err != nil {
		// Non-fatal: the document is still produced in degraded form, and a
		// write failure must not fail a scheduled run.
		slog.Error("pipeline run failed", "error", err)
	}

	if cfg.RunMode == config.RunModeOnce {
		return
	}

	serve(cfg, p, tracker, archive, outPath)
}

// serve keeps the pipeline running on its interval and exposes the status
// API until SIGINT or SIGTERM.
func serve(cfg *config.Config, p *pipeline.Pipeline, tracker *status.Tracker, archive store.Store, outPath string) {
	srv := server.New(cfg, tracker, archive, outPath)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sched := scheduler.New(p, cfg.UpdateInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sched.Start(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("serve failed", "error", err)
		os.Exit(1)
	}

	slog.Info("shutdown complete")
}
