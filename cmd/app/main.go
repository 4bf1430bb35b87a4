package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/FishingBot_Go/internal/bootstrap"
	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/confirm"
	"github.com/osse101/FishingBot_Go/internal/discord"
	"github.com/osse101/FishingBot_Go/internal/fishing"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/server"
	"github.com/osse101/FishingBot_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("FishingBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCloser, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.FromContext(ctx)
	log.Info(bootstrap.LogMsgStartingFishingBot, "version", cfg.Version, "environment", cfg.Environment)
	log.Info(bootstrap.LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"storage", cfg.StorageBackend,
		"api_enabled", cfg.APIEnabled(),
		"reel_delay", cfg.ReelDelay)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Info(bootstrap.LogMsgCatalogLoaded, "items", len(cat.Items()), "path", cfg.CatalogPath)

	store, err := bootstrap.OpenStore(ctx, cfg, cat.Starter().Name)
	if err != nil {
		return err
	}

	svc := fishing.NewService(cat, store)
	sched := worker.NewScheduler("presentation")
	confirms := confirm.NewManager(sched, cfg.ResetConfirmTimeout)

	var pinger ledger.Pinger
	if p, ok := store.(ledger.Pinger); ok {
		pinger = p
	}
	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, svc, confirms, pinger)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, &discord.Deps{
		Service:   svc,
		Confirms:  confirms,
		Scheduler: sched,
		ReelDelay: cfg.ReelDelay,
	})
	if err != nil {
		// The HTTP server has not started yet.
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
			Scheduler: sched,
			Service:   svc,
			Store:     store,
		})
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := bot.Run(gctx, cfg.ForceCommandUpdate); err != nil {
			return fmt.Errorf("discord bot: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:    srv,
			Scheduler: sched,
			Service:   svc,
			Store:     store,
		})
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
