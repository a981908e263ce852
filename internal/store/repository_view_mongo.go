// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoViewRepository is the MongoDB-backed implementation of
// [ViewRepository] working on the "view" collection.
type mongoViewRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMongoViewRepository(db *mongo.Database, logger *logger.Logger) ViewRepository {
	logger.Debug().Msg("creating mongo view repository")
	return &mongoViewRepository{
		collection: db.Collection(models.View{}.CollectionName()),
		logger:     logger,
	}
}

func (r *mongoViewRepository) CreateView(ctx context.Context, view models.View) (models.InsertResult, error) {
	doc := newViewDocument(view)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoViewRepository.CreateView").Msg("error inserting view")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (r *mongoViewRepository) FindViewByID(ctx context.Context, id string) (*models.View, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	var doc viewDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoViewRepository.FindViewByID").Msg("error finding view")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	view := doc.toModel()
	return &view, nil
}

func (r *mongoViewRepository) ListViews(ctx context.Context) ([]models.View, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoViewRepository) ListViewsByEmail(ctx context.Context, email string) ([]models.View, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *mongoViewRepository) DeleteView(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, ok := objectID(id)
	if !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoViewRepository.DeleteView").Msg("error deleting view")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *mongoViewRepository) find(ctx context.Context, filter bson.M) ([]models.View, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*mongoViewRepository.find").Msg("error finding views")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []viewDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoViewRepository.find").Msg("error decoding views")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	views := make([]models.View, 0, len(docs))
	for _, doc := range docs {
		views = append(views, doc.toModel())
	}

	return views, nil
}
