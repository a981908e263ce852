package service

import (
	"testing"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/mock"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:      mock.NewMockUserRepository(ctrl),
		ViewRepository:      mock.NewMockViewRepository(ctrl),
		SearchLogRepository: mock.NewMockSearchLogRepository(ctrl),
	}

	services, err := NewServices(storages, mock.NewMockSearchAdapter(ctrl), config.StructuredConfig{
		App: config.App{Version: "1.0.0", TokenSignKey: "secret"},
	}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.IsType(t, &ViewValidationService{}, services.ViewService)
	assert.NotNil(t, services.SearchService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, nil, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
