// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the external web-search
// provider.
//
// [SearchAdapter] decouples the service layer from the provider's wire
// format. The package ships a REST implementation ([NewHTTPSearchAdapter])
// that reduces the provider response to [models.SearchResult] values.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/oyou-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_adapter_mock.go -package=mock

// SearchAdapter performs web searches against the configured provider.
type SearchAdapter interface {
	// Search runs a single query and returns the provider results in the
	// provider's order. A response without items yields an empty, non-nil
	// slice. Transport failures, non-2xx statuses and undecodable bodies are
	// returned as errors; the call is never retried.
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}
