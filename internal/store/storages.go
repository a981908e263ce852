// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
)

// Storages groups the repositories of the configured driver together with the
// connection they share.
type Storages struct {
	UserRepository      UserRepository
	ViewRepository      ViewRepository
	SearchLogRepository SearchLogRepository

	pinger Pinger
	closer func(ctx context.Context) error
}

// NewStorages connects to the store selected by cfg.Driver and builds its
// repositories. An empty driver selects MongoDB.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo, "":
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository:      NewMongoUserRepository(db.Database, log, WithIndexes(db.ensureIndexes)),
			ViewRepository:      NewMongoViewRepository(db.Database, log),
			SearchLogRepository: NewMongoSearchLogRepository(db.Database, log),
			pinger:              db,
			closer:              db.Close,
		}, nil
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository:      NewPostgresUserRepository(db, log),
			ViewRepository:      NewPostgresViewRepository(db, log),
			SearchLogRepository: NewPostgresSearchLogRepository(db, log),
			pinger:              db,
			closer:              db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Ping reports whether the backing store answers.
func (s *Storages) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}

// Close releases the underlying connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
