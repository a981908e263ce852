package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// emailParam returns the decoded {email} segment. chi hands out the raw
// segment when the request path carries escapes (a%40b.com), so it is
// unescaped here.
func emailParam(r *http.Request) (string, error) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		return "", fmt.Errorf("%w: email: %w", ErrInvalidPathParam, err)
	}
	return email, nil
}
