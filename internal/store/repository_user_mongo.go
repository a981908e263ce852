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

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository] working on the "user" collection.
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger

	// ensureIndexes runs before every insertion when set. The unique email
	// index is what turns a second registration into ErrEmailAlreadyExists.
	ensureIndexes func(ctx context.Context) error
}

// MongoUserOption configures the repository built by [NewMongoUserRepository].
type MongoUserOption func(*mongoUserRepository)

// WithIndexes makes CreateUser call ensure before inserting. A failure is
// logged and the insertion goes ahead.
func WithIndexes(ensure func(ctx context.Context) error) MongoUserOption {
	return func(r *mongoUserRepository) {
		r.ensureIndexes = ensure
	}
}

// NewMongoUserRepository constructs a [UserRepository] over db.
func NewMongoUserRepository(db *mongo.Database, logger *logger.Logger, opts ...MongoUserOption) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	r := &mongoUserRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateUser inserts the user. A duplicate email yields
// [ErrEmailAlreadyExists].
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if r.ensureIndexes != nil {
		if err := r.ensureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error creating indexes")
		}
	}

	doc := newUserDocument(user)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error finding users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}

	return users, nil
}

func (r *mongoUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, ok := objectID(id)
	if !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.DeleteUser").Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.findOne").Msg("error finding user")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user := doc.toModel()
	return &user, nil
}
