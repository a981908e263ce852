package validators

import (
	"context"

	"github.com/MKhiriev/oyou-server/models"
)

// UserValidator validates registration bodies ([models.User]) and token
// requests ([models.IdentityPayload]).
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.IdentityPayload:
		return v.validateIdentity(ctx, value, fields...)
	case *models.IdentityPayload:
		return v.validateIdentity(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldRole, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(user.Email); err != nil {
				return err
			}
		case FieldRole:
			// empty role is defaulted to user by the service
			if user.Role != "" && !user.Role.Valid() {
				return ErrInvalidRole
			}
		case FieldImage:
			if err := validateOptionalURL(user.Photo); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateIdentity(ctx context.Context, identity models.IdentityPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(identity.Email); err != nil {
				return err
			}
		case FieldImage:
			if err := validateOptionalURL(identity.Photo); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
