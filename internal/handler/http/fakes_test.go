package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/models"
)

type fakeAuthService struct {
	createTokenFn func(ctx context.Context, identity models.IdentityPayload) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	isAdminFn     func(ctx context.Context, email string) (bool, error)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, identity models.IdentityPayload) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{}, nil
	}
	return f.createTokenFn(ctx, identity)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.parseTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.isAdminFn == nil {
		return false, nil
	}
	return f.isAdminFn(ctx, email)
}

type fakeUserService struct {
	createUserFn     func(ctx context.Context, user models.User) (models.InsertResult, error)
	getUserByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	deleteUserFn     func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return f.getUserByIDFn(ctx, id)
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getUserByEmailFn(ctx, email)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return f.deleteUserFn(ctx, id)
}

type fakeViewService struct {
	createViewFn       func(ctx context.Context, view models.View) (models.InsertResult, error)
	getViewByIDFn      func(ctx context.Context, id string) (*models.View, error)
	listViewsFn        func(ctx context.Context) ([]models.View, error)
	listViewsByEmailFn func(ctx context.Context, email string) ([]models.View, error)
	deleteViewFn       func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (f *fakeViewService) CreateView(ctx context.Context, view models.View) (models.InsertResult, error) {
	return f.createViewFn(ctx, view)
}

func (f *fakeViewService) GetViewByID(ctx context.Context, id string) (*models.View, error) {
	return f.getViewByIDFn(ctx, id)
}

func (f *fakeViewService) ListViews(ctx context.Context) ([]models.View, error) {
	return f.listViewsFn(ctx)
}

func (f *fakeViewService) ListViewsByEmail(ctx context.Context, email string) ([]models.View, error) {
	return f.listViewsByEmailFn(ctx, email)
}

func (f *fakeViewService) DeleteView(ctx context.Context, id string) (models.DeleteResult, error) {
	return f.deleteViewFn(ctx, id)
}

type fakeSearchService struct {
	searchFn         func(ctx context.Context, query, email string) ([]models.SearchResult, error)
	listSearchLogsFn func(ctx context.Context) ([]models.SearchLog, error)
}

func (f *fakeSearchService) Search(ctx context.Context, query, email string) ([]models.SearchResult, error) {
	return f.searchFn(ctx, query, email)
}

func (f *fakeSearchService) ListSearchLogs(ctx context.Context) ([]models.SearchLog, error) {
	return f.listSearchLogsFn(ctx)
}

type fakeAppInfoService struct {
	version string
	readyFn func(ctx context.Context) error
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Ready(ctx context.Context) error {
	if f.readyFn == nil {
		return nil
	}
	return f.readyFn(ctx)
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// withClaimsFor returns an auth fake accepting any token as email.
func withClaimsFor(email string) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{SignedString: "signed", Claims: &models.Claims{Email: email}}, nil
		},
	}
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
