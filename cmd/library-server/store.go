package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/library-books-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-books-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-books-go/library/shell"
	"github.com/AntonStoeckl/library-books-go/library/shell/config"
)

// openEventStore connects the configured storage engine. The returned func closes the connections.
// With a replica DSN, queries of the read side go to the replica, commands always use the primary.
func openEventStore(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
	metrics shell.MetricsCollector,
	tracing shell.TracingCollector,
) (shell.EventStore, func(), error) {

	if cfg.Engine == config.EngineMemory {
		logger.Warn("using the in-memory event store, nothing survives a restart")
		return memengine.NewEventStore(memengine.WithLogger(logger)), func() {}, nil
	}

	options := []postgresengine.Option{
		postgresengine.WithTableName(cfg.EventsTable),
		postgresengine.WithLogger(logger),
		postgresengine.WithMetrics(metrics),
		postgresengine.WithTracing(tracing),
	}

	withReplica := cfg.PostgresReplicaDSN != ""
	if withReplica {
		logger.Info("eventually consistent queries are served by the replica")
	}

	switch cfg.Engine {
	case config.EnginePGXPool:
		return openPGXPoolStore(ctx, cfg, withReplica, options)

	case config.EngineSQLDB:
		return openSQLDBStore(ctx, cfg, withReplica, options)

	case config.EngineSQLX:
		return openSQLXStore(ctx, cfg, withReplica, options)

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnsupportedEngine, cfg.Engine)
	}
}

func openPGXPoolStore(ctx context.Context, cfg config.Config, withReplica bool, options []postgresengine.Option) (shell.EventStore, func(), error) {
	primary, err := config.NewPGXPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if !withReplica {
		store, err := postgresengine.NewEventStoreFromPGXPool(primary, options...)
		if err != nil {
			primary.Close()
			return nil, nil, err
		}
		return store, primary.Close, nil
	}

	replica, err := config.NewPGXPool(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		replica.Close()
		primary.Close()
	}

	store, err := postgresengine.NewEventStoreFromPGXPoolWithReplica(primary, replica, options...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return store, closeAll, nil
}

func openSQLDBStore(ctx context.Context, cfg config.Config, withReplica bool, options []postgresengine.Option) (shell.EventStore, func(), error) {
	primary, err := config.NewSQLDB(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if !withReplica {
		store, err := postgresengine.NewEventStoreFromSQLDB(primary, options...)
		if err != nil {
			_ = primary.Close()
			return nil, nil, err
		}
		return store, func() { _ = primary.Close() }, nil
	}

	replica, err := config.NewSQLDB(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		_ = replica.Close()
		_ = primary.Close()
	}

	store, err := postgresengine.NewEventStoreFromSQLDBWithReplica(primary, replica, options...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return store, closeAll, nil
}

func openSQLXStore(ctx context.Context, cfg config.Config, withReplica bool, options []postgresengine.Option) (shell.EventStore, func(), error) {
	primary, err := config.NewSQLXDB(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if !withReplica {
		store, err := postgresengine.NewEventStoreFromSQLX(primary, options...)
		if err != nil {
			_ = primary.Close()
			return nil, nil, err
		}
		return store, func() { _ = primary.Close() }, nil
	}

	replica, err := config.NewSQLXDB(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		_ = replica.Close()
		_ = primary.Close()
	}

	store, err := postgresengine.NewEventStoreFromSQLXWithReplica(primary, replica, options...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	return store, closeAll, nil
}
