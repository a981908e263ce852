// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens the pool and, when the server answers, applies
// the embedded migrations. A DSN that cannot be parsed is returned as an
// error; an unreachable server is logged and the pool is returned anyway.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.URI)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	db := &DB{
		DB:     conn,
		logger: log,
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	// ping database
	if err = db.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Msg("database is unreachable, migrations skipped")
		return db, nil
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	if err = db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Close ignores ctx; database/sql has no context-aware close.
func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
