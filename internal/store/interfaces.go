// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/oyou-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
//
// Lookups return (nil, nil) when nothing matches, and identifiers that are
// not valid for the driver are treated as absent.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
}

// ViewRepository persists page views.
type ViewRepository interface {
	CreateView(ctx context.Context, view models.View) (models.InsertResult, error)
	FindViewByID(ctx context.Context, id string) (*models.View, error)
	ListViews(ctx context.Context) ([]models.View, error)
	ListViewsByEmail(ctx context.Context, email string) ([]models.View, error)
	DeleteView(ctx context.Context, id string) (models.DeleteResult, error)
}

// SearchLogRepository persists the log of successful searches.
type SearchLogRepository interface {
	CreateSearchLog(ctx context.Context, searchLog models.SearchLog) (models.InsertResult, error)
	ListSearchLogs(ctx context.Context) ([]models.SearchLog, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
