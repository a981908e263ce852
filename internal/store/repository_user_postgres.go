// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
	sq "github.com/Masterminds/squirrel"
)

// postgresUserRepository is the PostgreSQL-backed implementation of
// [UserRepository]. It works on the "users" table; identifiers are UUIDv7
// strings generated on insertion.
type postgresUserRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewPostgresUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &postgresUserRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// CreateUser inserts the user. PostgreSQL unique_violation (23505) on the
// email column yields [ErrEmailAlreadyExists].
func (r *postgresUserRepository) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	id := r.idGenerator.Generate()
	query, args, err := buildInsertUserQuery(id, user)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.InsertResult{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*postgresUserRepository.CreateUser").Msg("error inserting user")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *postgresUserRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if !utils.IsUUID(id) {
		return nil, nil
	}

	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *postgresUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *postgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.query(ctx, nil)
}

func (r *postgresUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	if !utils.IsUUID(id) {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	return deleteByID(ctx, r.db, models.User{}.TableName(), id)
}

func (r *postgresUserRepository) findOne(ctx context.Context, where sq.Sqlizer) (*models.User, error) {
	users, err := r.query(ctx, where)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}

func (r *postgresUserRepository) query(ctx context.Context, where sq.Sqlizer) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresUserRepository.query").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var (
			user    models.User
			role    string
			profile []byte
		)
		if err = rows.Scan(&user.ID, &user.Email, &user.Name, &user.Photo, &role, &profile, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*postgresUserRepository.query").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		user.Role = models.Role(role)
		if user.Profile, err = unmarshalJSONB(profile); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return users, nil
}

// deleteByID removes a row by primary key and reports the number of rows
// affected.
func deleteByID(ctx context.Context, db *DB, table, id string) (models.DeleteResult, error) {
	query, args, err := buildDeleteByIDQuery(table, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deleteByID").Str("table", table).Msg("error deleting row")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
