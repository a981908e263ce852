// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsertResult is returned by every create operation.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult is returned by every delete operation. DeletedCount is 0 when
// no document matched.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// AdminStatus is the body of GET /user/admin/{email}.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// ErrorResponse is the JSON error body used by the search endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is the body of the health and readiness probes.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
