package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lufiasha/botdiscord/internal/catalog"
	"github.com/lufiasha/botdiscord/internal/config"
	"github.com/lufiasha/botdiscord/internal/database"
	"github.com/lufiasha/botdiscord/internal/database/postgres"
	"github.com/lufiasha/botdiscord/internal/discord"
	"github.com/lufiasha/botdiscord/internal/game"
	"github.com/lufiasha/botdiscord/internal/logger"
	"github.com/lufiasha/botdiscord/internal/random"
	"github.com/lufiasha/botdiscord/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	publicKey, err := discord.ParsePublicKey(cfg.DiscordPublicKey)
	if err != nil {
		slog.Error("Invalid DISCORD_PUBLIC_KEY", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}

	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime,
	)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewPlayerRepository(pool)

	gameSvc := game.NewService(repo, cat, random.NewFromTime(), game.Config{
		BossDropChance: cfg.BossDropChance,
		CacheSize:      cfg.PlayerCacheSize,
		CacheTTL:       cfg.PlayerCacheTTL,
	})

	srv := server.NewServer(cfg.Port, publicKey, pool, gameSvc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// setupLogger configures the process-wide structured logger.
func setupLogger(cfg *config.Config) {
	logCfg := logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: logCfg.LogLevel()}
	if logCfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
