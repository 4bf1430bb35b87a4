package bootstrap

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/fishing"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

type stopper interface {
	Stop(ctx context.Context) error
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    stopper
	Scheduler shutdowner
	Service   fishing.Service
	Store     ledger.Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (drop pending reveals and confirmations, wait for running ones)
// 3. Fishing service (complete in-flight attempts)
// 4. Player store
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			log.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if c.Scheduler != nil {
		if err := c.Scheduler.Shutdown(ctx); err != nil {
			log.Error(LogMsgSchedulerShutdownFail, "error", err)
		}
	}
	if c.Service != nil {
		if err := c.Service.Shutdown(ctx); err != nil {
			log.Error(LogMsgServiceShutdownFailed, "error", err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			log.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	log.Info(LogMsgStopped)
}
