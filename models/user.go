// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level stored on a [User].
type Role string

const (
	// RoleUser is the default role of every registered account.
	RoleUser Role = "user"
	// RoleAdmin grants access to administrative routes.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account.
//
// Role is never taken from a token: it is looked up from the store on every
// request that needs it.
type User struct {
	// ID is the store identifier: a 24-hex ObjectID for MongoDB, a UUID for
	// PostgreSQL. Assigned by the store on insertion.
	ID string `json:"_id,omitempty"`

	// Email is the unique account identifier.
	Email string `json:"email"`

	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`

	// Role defaults to RoleUser when empty on registration.
	Role Role `json:"role"`

	// Profile holds any additional top-level fields sent by the client. They
	// are written back flat, next to the fields above.
	Profile map[string]any `json:"-"`

	// CreatedAt is set by the server on registration.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the stored role grants administrative access.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the PostgreSQL table for users.
func (u User) TableName() string {
	return "users"
}

// CollectionName returns the name of the MongoDB collection for users.
func (u User) CollectionName() string {
	return "user"
}
