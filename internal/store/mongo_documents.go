// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/oyou-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents are stored flat: the known fields as top-level keys and the
// client-supplied extras inlined next to them, so records written by older
// clients (arbitrary top-level keys) decode without loss.

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty"`
	Role      string             `bson:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	Extra     map[string]any     `bson:",inline"`
}

var userDocumentKeys = []string{"_id", "email", "name", "photo", "role", "createdAt"}

func newUserDocument(user models.User) userDocument {
	return userDocument{
		Email:     user.Email,
		Name:      user.Name,
		Photo:     user.Photo,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		Extra:     withoutKeys(user.Profile, userDocumentKeys),
	}
}

func (d userDocument) toModel() models.User {
	role := models.Role(d.Role)
	if role == "" {
		role = models.RoleUser
	}

	return models.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Name:      d.Name,
		Photo:     d.Photo,
		Role:      role,
		Profile:   nonEmpty(d.Extra),
		CreatedAt: d.CreatedAt,
	}
}

type viewDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	Page        string             `bson:"page,omitempty"`
	Title       string             `bson:"title,omitempty"`
	Link        string             `bson:"link,omitempty"`
	DisplayLink string             `bson:"displayLink,omitempty"`
	Image       string             `bson:"image,omitempty"`
	ViewedAt    time.Time          `bson:"viewedAt,omitempty"`
	Extra       map[string]any     `bson:",inline"`
}

var viewDocumentKeys = []string{"_id", "email", "page", "title", "link", "displayLink", "image", "viewedAt"}

func newViewDocument(view models.View) viewDocument {
	return viewDocument{
		Email:       view.Email,
		Page:        view.Page,
		Title:       view.Title,
		Link:        view.Link,
		DisplayLink: view.DisplayLink,
		Image:       view.Image,
		ViewedAt:    view.ViewedAt,
		Extra:       withoutKeys(view.Payload, viewDocumentKeys),
	}
}

func (d viewDocument) toModel() models.View {
	return models.View{
		ID:          d.ID.Hex(),
		Email:       d.Email,
		Page:        d.Page,
		Title:       d.Title,
		Link:        d.Link,
		DisplayLink: d.DisplayLink,
		Image:       d.Image,
		Payload:     nonEmpty(d.Extra),
		ViewedAt:    d.ViewedAt,
	}
}

type searchLogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Query     string             `bson:"query"`
	Email     string             `bson:"email,omitempty"`
	Results   int                `bson:"results"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func newSearchLogDocument(searchLog models.SearchLog) searchLogDocument {
	return searchLogDocument{
		Query:     searchLog.Query,
		Email:     searchLog.Email,
		Results:   searchLog.Results,
		CreatedAt: searchLog.CreatedAt,
	}
}

func (d searchLogDocument) toModel() models.SearchLog {
	return models.SearchLog{
		ID:        d.ID.Hex(),
		Query:     d.Query,
		Email:     d.Email,
		Results:   d.Results,
		CreatedAt: d.CreatedAt,
	}
}

// withoutKeys copies m without the reserved keys, so inlined extras never
// collide with the document's own fields.
func withoutKeys(m map[string]any, reserved []string) map[string]any {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range reserved {
		delete(out, k)
	}

	return nonEmpty(out)
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// objectID parses a hex identifier. ok is false for anything that is not a
// valid ObjectID.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
