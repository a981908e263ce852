package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/internal/validators"
	"github.com/MKhiriev/oyou-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Tokens are stateless HS256 JWTs; role checks go to the UserRepository.
type authService struct {
	// userRepository is used for the live role lookup.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// CreateToken issues a signed JWT carrying the identity payload.
//
// Returns ErrInvalidDataProvided (wrapped) when the email is missing or
// malformed, or ErrTokenCreationFailed when signing fails.
func (a *authService) CreateToken(ctx context.Context, identity models.IdentityPayload) (models.Token, error) {
	if err := a.validator.Validate(ctx, identity); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other failure (bad
// signature, wrong issuer or algorithm, malformed input) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// IsAdmin reports whether the user stored under email has the admin role.
// A missing user is not an error.
func (a *authService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IsAdmin").Str("email", email).Msg("role lookup failed")
		return false, fmt.Errorf("role lookup failed: %w", err)
	}
	if user == nil {
		return false, nil
	}

	return user.IsAdmin(), nil
}
