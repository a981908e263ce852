// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies at the service boundary before
// anything reaches the store.
//
// Each Validator accepts the model it knows (value or pointer) and returns
// ErrUnsupportedType for anything else. Callers may pass field names to
// restrict validation to those fields; without them a default set is used.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
