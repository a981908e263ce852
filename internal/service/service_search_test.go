package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/mock"
	"github.com/MKhiriev/oyou-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSearchSvc(t *testing.T) (SearchService, *mock.MockSearchAdapter, *mock.MockSearchLogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	searchAdapter := mock.NewMockSearchAdapter(ctrl)
	repo := mock.NewMockSearchLogRepository(ctrl)

	svc := NewSearchService(searchAdapter, repo, logger.Nop()).(*searchService)
	svc.now = func() time.Time { return fixedNow }

	return svc, searchAdapter, repo
}

func TestSearchService_Search_LogsSuccessfulSearch(t *testing.T) {
	svc, searchAdapter, repo := newTestSearchSvc(t)
	ctx := context.Background()

	results := []models.SearchResult{{Title: "Go", Link: "https://go.dev"}, {Title: "Gopher"}}

	gomock.InOrder(
		searchAdapter.EXPECT().Search(ctx, "golang").Return(results, nil),
		repo.EXPECT().CreateSearchLog(ctx, models.SearchLog{
			Query:     "golang",
			Email:     "ada@example.com",
			Results:   2,
			CreatedAt: fixedNow,
		}).Return(models.InsertResult{Acknowledged: true}, nil),
	)

	got, err := svc.Search(ctx, "golang", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestSearchService_Search_LogFailureIsNotSurfaced(t *testing.T) {
	svc, searchAdapter, repo := newTestSearchSvc(t)
	ctx := context.Background()

	searchAdapter.EXPECT().Search(ctx, "golang").Return([]models.SearchResult{}, nil)
	repo.EXPECT().CreateSearchLog(ctx, gomock.Any()).Return(models.InsertResult{}, errors.New("store down"))

	got, err := svc.Search(ctx, "golang", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	svc, _, _ := newTestSearchSvc(t)

	_, err := svc.Search(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptySearchQuery)
}

func TestSearchService_Search_WhitespaceQueryIsForwarded(t *testing.T) {
	svc, searchAdapter, repo := newTestSearchSvc(t)
	ctx := context.Background()

	searchAdapter.EXPECT().Search(ctx, "   ").Return([]models.SearchResult{}, nil)
	repo.EXPECT().CreateSearchLog(ctx, gomock.Any()).Return(models.InsertResult{Acknowledged: true}, nil)

	got, err := svc.Search(ctx, "   ", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_Search_ProviderFailure(t *testing.T) {
	svc, searchAdapter, _ := newTestSearchSvc(t)
	ctx := context.Background()
	providerErr := errors.New("quota exceeded")

	searchAdapter.EXPECT().Search(ctx, "golang").Return(nil, providerErr)

	_, err := svc.Search(ctx, "golang", "")
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.ErrorIs(t, err, providerErr)
}

func TestSearchService_ListSearchLogs(t *testing.T) {
	svc, _, repo := newTestSearchSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListSearchLogs(ctx).Return([]models.SearchLog{{Query: "golang"}}, nil)

	logs, err := svc.ListSearchLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
