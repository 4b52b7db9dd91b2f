package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbncursed/vkr/board-service/internal/config"
	"github.com/vbncursed/vkr/board-service/internal/repo/memory"
	"github.com/vbncursed/vkr/board-service/internal/repo/mongostore"
	"github.com/vbncursed/vkr/board-service/internal/service"
)

// Backend — все, что сервису нужно от хранилища
type Backend interface {
	service.BoardRepository
	service.UserRepository
	Ping(ctx context.Context) error
}

// Open подключает хранилище по STORE_DRIVER; close освобождает соединения
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Backend, func(), error) {
	switch cfg.Driver() {
	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.New(), func() {}, nil

	case config.DriverMongo:
		client, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		store := mongostore.New(client, cfg.Mongo.Database)
		if err := store.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return store, closeFn, nil

	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return NewStore(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.StoreDriver)
}
