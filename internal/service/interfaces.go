package service

import (
	"context"

	"github.com/MKhiriev/oyou-server/models"
)

// AuthService issues and verifies access tokens and answers role checks.
type AuthService interface {
	CreateToken(ctx context.Context, identity models.IdentityPayload) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// IsAdmin reads the stored role of the user on every call.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
}

type ViewService interface {
	CreateView(ctx context.Context, view models.View) (models.InsertResult, error)
	GetViewByID(ctx context.Context, id string) (*models.View, error)
	ListViews(ctx context.Context) ([]models.View, error)
	ListViewsByEmail(ctx context.Context, email string) ([]models.View, error)
	DeleteView(ctx context.Context, id string) (models.DeleteResult, error)
}

type SearchService interface {
	// Search queries the provider on behalf of email, which is empty for
	// anonymous callers.
	Search(ctx context.Context, query, email string) ([]models.SearchResult, error)
	ListSearchLogs(ctx context.Context) ([]models.SearchLog, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ready(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ViewServiceWrapper defines middleware composition for ViewService.
type ViewServiceWrapper interface {
	Wrap(ViewService) ViewService
}
