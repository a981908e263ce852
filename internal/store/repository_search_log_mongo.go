// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoSearchLogRepository is the MongoDB-backed implementation of
// [SearchLogRepository] working on the "search" collection.
type mongoSearchLogRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMongoSearchLogRepository(db *mongo.Database, logger *logger.Logger) SearchLogRepository {
	logger.Debug().Msg("creating mongo search log repository")
	return &mongoSearchLogRepository{
		collection: db.Collection(models.SearchLog{}.CollectionName()),
		logger:     logger,
	}
}

func (r *mongoSearchLogRepository) CreateSearchLog(ctx context.Context, searchLog models.SearchLog) (models.InsertResult, error) {
	doc := newSearchLogDocument(searchLog)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSearchLogRepository.CreateSearchLog").Msg("error inserting search log")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

// ListSearchLogs returns the logs newest first.
func (r *mongoSearchLogRepository) ListSearchLogs(ctx context.Context) ([]models.SearchLog, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoSearchLogRepository.ListSearchLogs").Msg("error finding search logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []searchLogDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoSearchLogRepository.ListSearchLogs").Msg("error decoding search logs")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	logs := make([]models.SearchLog, 0, len(docs))
	for _, doc := range docs {
		logs = append(logs, doc.toModel())
	}

	return logs, nil
}
