package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/oyou-server/internal/adapter"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/models"
)

type searchService struct {
	searchAdapter       adapter.SearchAdapter
	searchLogRepository store.SearchLogRepository

	logger *logger.Logger
	now    func() time.Time
}

func NewSearchService(searchAdapter adapter.SearchAdapter, searchLogRepository store.SearchLogRepository, logger *logger.Logger) SearchService {
	return &searchService{
		searchAdapter:       searchAdapter,
		searchLogRepository: searchLogRepository,
		logger:              logger,
		now:                 time.Now,
	}
}

// Search forwards the query to the provider. An empty query is rejected
// with ErrEmptySearchQuery (whitespace is passed through as typed), provider failures with ErrSearchFailed. A
// successful search is logged to the store; failing to do so only produces a
// warning.
func (s *searchService) Search(ctx context.Context, query, email string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	results, err := s.searchAdapter.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	_, err = s.searchLogRepository.CreateSearchLog(ctx, models.SearchLog{
		Query:     query,
		Email:     email,
		Results:   len(results),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "*searchService.Search").Msg("error saving search log")
	}

	return results, nil
}

func (s *searchService) ListSearchLogs(ctx context.Context) ([]models.SearchLog, error) {
	return s.searchLogRepository.ListSearchLogs(ctx)
}
