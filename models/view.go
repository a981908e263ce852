// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// View is a page view recorded on behalf of a user.
type View struct {
	ID string `json:"_id,omitempty"`

	// Email is the owning user's email.
	Email string `json:"email"`

	Page        string `json:"page,omitempty"`
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	DisplayLink string `json:"displayLink,omitempty"`
	Image       string `json:"image,omitempty"`

	// Payload holds any additional top-level fields sent by the client,
	// written back flat.
	Payload map[string]any `json:"-"`

	// ViewedAt is set by the server on insertion.
	ViewedAt time.Time `json:"viewedAt"`
}

// TableName returns the name of the PostgreSQL table for views.
func (v View) TableName() string {
	return "views"
}

// CollectionName returns the name of the MongoDB collection for views.
func (v View) CollectionName() string {
	return "view"
}
