package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
	now    func() time.Time
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateUser stamps the creation time and stores the record with the user
// role: registration never grants admin, admins are promoted in the store.
// A taken email surfaces as store.ErrEmailAlreadyExists.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	user.Role = models.RoleUser
	user.ID = ""
	user.CreatedAt = s.now().UTC()

	result, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("id", result.InsertedID).Msg("user created")
	return result, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepository.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.userRepository.DeleteUser(ctx, id)
}
