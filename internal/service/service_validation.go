package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/oyou-server/internal/validators"
	"github.com/MKhiriev/oyou-server/models"
)

// UserValidationService checks request bodies before they reach the inner
// UserService. Reads and deletes pass straight through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return v.inner.GetUserByID(ctx, id)
}

func (v *UserValidationService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return v.inner.GetUserByEmail(ctx, email)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// ViewValidationService requires the owning email on new views.
type ViewValidationService struct {
	inner     ViewService
	validator validators.Validator
}

func NewViewValidationService() ViewServiceWrapper {
	return &ViewValidationService{
		validator: validators.NewViewValidator(),
	}
}

func (v *ViewValidationService) CreateView(ctx context.Context, view models.View) (models.InsertResult, error) {
	if err := v.validator.Validate(ctx, view); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateView(ctx, view)
}

func (v *ViewValidationService) GetViewByID(ctx context.Context, id string) (*models.View, error) {
	return v.inner.GetViewByID(ctx, id)
}

func (v *ViewValidationService) ListViews(ctx context.Context) ([]models.View, error) {
	return v.inner.ListViews(ctx)
}

func (v *ViewValidationService) ListViewsByEmail(ctx context.Context, email string) ([]models.View, error) {
	return v.inner.ListViewsByEmail(ctx, email)
}

func (v *ViewValidationService) DeleteView(ctx context.Context, id string) (models.DeleteResult, error) {
	return v.inner.DeleteView(ctx, id)
}

func (v *ViewValidationService) Wrap(inner ViewService) ViewService {
	v.inner = inner
	return v
}
