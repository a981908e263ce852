// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SearchResult is a single web-search hit reduced to the fields the client
// renders.
type SearchResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`

	// Image is nil when the provider returned no thumbnail.
	Image *string `json:"image"`
}

// SearchLog records a successful search.
type SearchLog struct {
	ID    string `json:"_id,omitempty"`
	Query string `json:"query"`

	// Email is the caller's email when the request carried a valid token.
	Email string `json:"email,omitempty"`

	// Results is the number of results returned to the caller.
	Results   int       `json:"results"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the PostgreSQL table for search logs.
func (s SearchLog) TableName() string {
	return "search_logs"
}

// CollectionName returns the name of the MongoDB collection for search logs.
func (s SearchLog) CollectionName() string {
	return "search"
}
