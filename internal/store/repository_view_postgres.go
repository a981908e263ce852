package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
	sq "github.com/Masterminds/squirrel"
)

// postgresViewRepository is the PostgreSQL-backed implementation of
// [ViewRepository] working on the "views" table.
type postgresViewRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewPostgresViewRepository(db *DB, logger *logger.Logger) ViewRepository {
	logger.Debug().Msg("creating postgres view repository")
	return &postgresViewRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (r *postgresViewRepository) CreateView(ctx context.Context, view models.View) (models.InsertResult, error) {
	id := r.idGenerator.Generate()
	query, args, err := buildInsertViewQuery(id, view)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresViewRepository.CreateView").Msg("error inserting view")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *postgresViewRepository) FindViewByID(ctx context.Context, id string) (*models.View, error) {
	if !utils.IsUUID(id) {
		return nil, nil
	}

	views, err := r.query(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}

	return &views[0], nil
}

func (r *postgresViewRepository) ListViews(ctx context.Context) ([]models.View, error) {
	return r.query(ctx, nil)
}

func (r *postgresViewRepository) ListViewsByEmail(ctx context.Context, email string) ([]models.View, error) {
	return r.query(ctx, sq.Eq{"email": email})
}

func (r *postgresViewRepository) DeleteView(ctx context.Context, id string) (models.DeleteResult, error) {
	if !utils.IsUUID(id) {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	return deleteByID(ctx, r.db, models.View{}.TableName(), id)
}

func (r *postgresViewRepository) query(ctx context.Context, where sq.Sqlizer) ([]models.View, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectViewsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresViewRepository.query").Msg("error selecting views")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	views := make([]models.View, 0)
	for rows.Next() {
		var (
			view    models.View
			payload []byte
		)
		if err = rows.Scan(&view.ID, &view.Email, &view.Page, &view.Title, &view.Link, &view.DisplayLink, &view.Image, &payload, &view.ViewedAt); err != nil {
			log.Err(err).Str("func", "*postgresViewRepository.query").Msg("error scanning view")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if view.Payload, err = unmarshalJSONB(payload); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return views, nil
}
