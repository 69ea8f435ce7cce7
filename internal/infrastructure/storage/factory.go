// Package storage elige el BlobStore según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/mongo"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/s3"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/farm-ledger/pkg/config"
)

// Backend almacén abierto y su función de cierre.
type Backend struct {
	Store  repository.BlobStore
	Driver string
	close  func(ctx context.Context) error
}

// Close libera las conexiones del backend.
func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open abre el backend configurado.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	driver := cfg.Storage.Driver
	switch driver {
	case config.DriverMemory:
		return &Backend{Store: memory.NewStore(), Driver: driver}, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: st, Driver: driver, close: func(context.Context) error { return st.Close() }}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		st := postgres.NewBlobStore(pool)
		if err := st.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Store: st, Driver: driver, close: func(context.Context) error { pool.Close(); return nil }}, nil

	case config.DriverS3:
		st, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: st, Driver: driver}, nil

	case config.DriverMongo:
		st, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: st, Driver: driver, close: st.Close}, nil
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", driver)
}
