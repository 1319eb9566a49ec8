package routes

import (
	"context"
	"fmt"
	"plan_appetit/internal/adapter/persistence/repository"
	"plan_appetit/internal/config"
	"plan_appetit/internal/infrastructure/database"
	"plan_appetit/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// newKeyValueStore opens the medium selected by STORAGE_DRIVER. The returned
// close function is never nil.
func newKeyValueStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IKeyValueStore, func(), error) {
	noop := func() {}
	ns := cfg.Storage.Namespace

	switch cfg.Storage.Driver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		if err := database.EnsureKVTable(ctx, ddb, cfg.DynamoDB.Table); err != nil {
			return nil, noop, err
		}
		logger.Info("using dynamodb storage", zap.String("table", cfg.DynamoDB.Table), zap.String("namespace", ns))
		return repository.NewKVDynamoRepository(ddb, cfg.DynamoDB.Table, ns), noop, nil

	case config.DriverMongoDB:
		client, db, err := database.ConnectMongoDB(ctx, cfg.MongoDB)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using mongodb storage", zap.String("database", cfg.MongoDB.DBName), zap.String("namespace", ns))
		return repository.NewKVMongoRepository(db, ns), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using sqlite storage", zap.String("path", cfg.SQLite.Path), zap.String("namespace", ns))
		return repository.NewKVSQLiteRepository(db, ns), func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close sqlite database", zap.Error(err))
			}
		}, nil

	case config.DriverFile:
		repo, err := repository.NewKVFileRepository(cfg.Storage.FileDir, ns)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using file storage", zap.String("dir", cfg.Storage.FileDir), zap.String("namespace", ns))
		return repo, noop, nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart", zap.String("namespace", ns))
		return repository.NewKVMemoryRepository(ns), noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
