package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/raihan324/Food-Application/internal/actor"
	"github.com/raihan324/Food-Application/internal/backend"
	"github.com/raihan324/Food-Application/internal/buildinfo"
	"github.com/raihan324/Food-Application/internal/config"
	"github.com/raihan324/Food-Application/internal/feed"
	"github.com/raihan324/Food-Application/internal/fooditem"
	"github.com/raihan324/Food-Application/internal/logging"
	"github.com/raihan324/Food-Application/internal/notify"
	"github.com/raihan324/Food-Application/internal/ui"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()

	logger, closeLog := newLogger()
	defer closeLog()

	b, err := newBackend(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	provider := actorProvider(cfg)
	notifier := notify.New()
	repo := fooditem.NewRepository(b, cfg.StorageKey, provider, notifier, logger)
	f := feed.New(repo, notifier, b, cfg.StorageKey, cfg.PollInterval, logger)

	var current *actor.Actor
	if a, _ := provider.Current(ctx); a != nil {
		current = a
	}

	opts := ui.Options{
		Repo:  repo,
		Feed:  f,
		Actor: current,
		Log:   logger,
	}
	if err := ui.Run(ctx, opts); err != nil {
		log.Fatalf("%v", err)
	}
}

// newLogger writes structured logs to the file named by FOODDESK_LOG, or
// discards them: the terminal belongs to the dashboard.
func newLogger() (logging.Logger, func()) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if path := os.Getenv("FOODDESK_LOG"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		w = file
		closeLog = func() { _ = file.Close() }
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), closeLog
}

func newBackend(ctx context.Context, cfg *config.Config, logger logging.Logger) (backend.Backend, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("could not connect to redis (%s): %w", cfg.RedisAddr, err)
		}
		return backend.NewRedis(client, logger), nil
	case "postgres":
		return backend.NewPostgres(ctx, cfg.PostgresDSN, logger)
	case "memory":
		// Volatile and single-instance; other running instances see nothing.
		return backend.NewOrigin().Open(), nil
	default:
		return nil, fmt.Errorf("unknown backend kind %q", cfg.Backend)
	}
}

// actorProvider builds the signed-in actor from configuration. With no name
// or email configured the provider reports nobody signed in, and record
// creation is refused.
func actorProvider(cfg *config.Config) actor.Provider {
	if cfg.ActorName == "" || cfg.ActorEmail == "" {
		return actor.NewStatic(nil)
	}
	return actor.NewStatic(&actor.Actor{
		ID:    uuid.NewString(),
		Name:  cfg.ActorName,
		Email: cfg.ActorEmail,
	})
}
