package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/models"
)

type viewService struct {
	viewRepository store.ViewRepository

	logger *logger.Logger
	now    func() time.Time
}

func NewViewService(viewRepository store.ViewRepository, logger *logger.Logger) ViewService {
	return &viewService{
		viewRepository: viewRepository,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *viewService) CreateView(ctx context.Context, view models.View) (models.InsertResult, error) {
	view.ID = ""
	view.ViewedAt = s.now().UTC()

	result, err := s.viewRepository.CreateView(ctx, view)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("view creation ended with error: %w", err)
	}

	return result, nil
}

func (s *viewService) GetViewByID(ctx context.Context, id string) (*models.View, error) {
	return s.viewRepository.FindViewByID(ctx, id)
}

func (s *viewService) ListViews(ctx context.Context) ([]models.View, error) {
	return s.viewRepository.ListViews(ctx)
}

func (s *viewService) ListViewsByEmail(ctx context.Context, email string) ([]models.View, error) {
	return s.viewRepository.ListViewsByEmail(ctx, email)
}

func (s *viewService) DeleteView(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.viewRepository.DeleteView(ctx, id)
}
