package service

import (
	"github.com/MKhiriev/oyou-server/internal/adapter"
	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ViewService    ViewService
	SearchService  SearchService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, searchAdapter adapter.SearchAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		ViewService:    NewViewValidationService().Wrap(NewViewService(storages.ViewRepository, logger)),
		SearchService:  NewSearchService(searchAdapter, storages.SearchLogRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
