package adapter

import "errors"

var (
	ErrSearchRequest      = errors.New("search request failed")
	ErrDecodingResponse   = errors.New("failed to decode search response")
	ErrInvalidProviderURL = errors.New("invalid search provider url")

	ErrBadRequest          = errors.New("search provider rejected the request")
	ErrForbidden           = errors.New("search provider denied access")
	ErrTooManyRequests     = errors.New("search provider quota exceeded")
	ErrProviderUnavailable = errors.New("search provider unavailable")
)
