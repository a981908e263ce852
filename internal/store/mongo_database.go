// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the database handle shared by every Mongo repository.
type MongoDB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger

	indexMu sync.Mutex
	indexed bool
	// createIndexes is EnsureIndexes unless replaced in tests.
	createIndexes func(ctx context.Context) error
}

// NewConnectMongo creates the client and selects the configured database.
//
// A malformed URI (or an SRV record that cannot be resolved) is returned as
// an error. An unreachable server is only logged: the driver reconnects on
// its own and requests fail individually until it is back. Indexes are then
// created by the first successful Ping or user insertion.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("error occurred during mongo connection: %w", err)
	}

	db := &MongoDB{
		Database: client.Database(cfg.Name),
		client:   client,
		logger:   log,
	}
	db.createIndexes = db.EnsureIndexes

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err = db.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectMongo").Msg("mongo is unreachable, continuing without it")
		return db, nil
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to mongo successfully")

	if err = db.ensureIndexes(ctx); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
	}

	return db, nil
}

// Ping checks that the primary is reachable and creates the indexes if an
// earlier attempt did not.
func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	if err := m.ensureIndexes(ctx); err != nil {
		m.logger.Warn().Err(err).Str("func", "*MongoDB.Ping").Msg("error creating indexes")
	}
	return nil
}

// ensureIndexes runs createIndexes until it succeeds once.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	m.indexMu.Lock()
	defer m.indexMu.Unlock()

	if m.indexed {
		return nil
	}
	if err := m.createIndexes(ctx); err != nil {
		return err
	}
	m.indexed = true
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index on users and the owner index
// on views. Creating an index that already exists is a no-op.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.Collection(models.User{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating user email index: %w", err)
	}

	_, err = m.Collection(models.View{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email"),
	})
	if err != nil {
		return fmt.Errorf("error creating view email index: %w", err)
	}

	return nil
}
