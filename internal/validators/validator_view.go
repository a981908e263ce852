package validators

import (
	"context"

	"github.com/MKhiriev/oyou-server/models"
)

// ViewValidator validates page-view bodies.
type ViewValidator struct {
}

func NewViewValidator() Validator {
	return &ViewValidator{}
}

func (v *ViewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.View:
		return v.validateView(ctx, value, fields...)
	case *models.View:
		return v.validateView(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ViewValidator) validateView(ctx context.Context, view models.View, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLink, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(view.Email); err != nil {
				return err
			}
		case FieldLink:
			if err := validateOptionalURL(view.Link); err != nil {
				return err
			}
		case FieldImage:
			if err := validateOptionalURL(view.Image); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
