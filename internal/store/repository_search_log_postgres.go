package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
)

type postgresSearchLogRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewPostgresSearchLogRepository(db *DB, logger *logger.Logger) SearchLogRepository {
	logger.Debug().Msg("creating postgres search log repository")
	return &postgresSearchLogRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (r *postgresSearchLogRepository) CreateSearchLog(ctx context.Context, searchLog models.SearchLog) (models.InsertResult, error) {
	id := r.idGenerator.Generate()
	query, args, err := buildInsertSearchLogQuery(id, searchLog)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresSearchLogRepository.CreateSearchLog").Msg("error inserting search log")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// ListSearchLogs returns the logs newest first.
func (r *postgresSearchLogRepository) ListSearchLogs(ctx context.Context) ([]models.SearchLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSearchLogsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresSearchLogRepository.ListSearchLogs").Msg("error selecting search logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logs := make([]models.SearchLog, 0)
	for rows.Next() {
		var l models.SearchLog
		if err = rows.Scan(&l.ID, &l.Query, &l.Email, &l.Results, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return logs, nil
}
