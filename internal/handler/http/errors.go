// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middleware chain. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoClaims means a guarded route was reached without passing auth.
	ErrNoClaims = errors.New("no verified claims in request")

	// ErrForbidden is returned by requireSelf and requireAdmin.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidPathParam is returned for a path segment that is not valid
	// percent-encoding.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
