package validators

import (
	"net/mail"
	"net/url"
	"strings"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail = "email"
	FieldRole  = "role"
	FieldLink  = "link"
	FieldImage = "image"
)

const maxEmailLength = 254

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

// validateOptionalURL accepts an empty string or an absolute http(s) URL.
func validateOptionalURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidLink
	}

	return nil
}
