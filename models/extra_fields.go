// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Top-level JSON members owned by the struct fields. Everything else a client
// sends is kept in User.Profile or View.Payload and written back flat.
var (
	userJSONKeys = []string{"_id", "email", "name", "photo", "role", "createdAt"}
	viewJSONKeys = []string{"_id", "email", "page", "title", "link", "displayLink", "image", "viewedAt"}
)

// UnmarshalJSON decodes the known members into the struct fields and folds
// the remaining top-level members into Profile.
func (u *User) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := unknownFields(data, userJSONKeys)
	if err != nil {
		return err
	}
	p.Profile = extra

	*u = User(p)
	return nil
}

// MarshalJSON writes Profile members next to the known fields.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	data, err := json.Marshal(plain(u))
	if err != nil {
		return nil, err
	}
	return withExtraFields(data, u.Profile, userJSONKeys)
}

// UnmarshalJSON decodes the known members into the struct fields and folds
// the remaining top-level members into Payload.
func (v *View) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	type plain View
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	extra, err := unknownFields(data, viewJSONKeys)
	if err != nil {
		return err
	}
	p.Payload = extra

	*v = View(p)
	return nil
}

// MarshalJSON writes Payload members next to the known fields.
func (v View) MarshalJSON() ([]byte, error) {
	type plain View
	data, err := json.Marshal(plain(v))
	if err != nil {
		return nil, err
	}
	return withExtraFields(data, v.Payload, viewJSONKeys)
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// unknownFields returns the top-level members of the object in data whose
// keys are not in known, or nil when there are none.
func unknownFields(data []byte, known []string) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// withExtraFields adds the members of extra to the encoded object base.
// Known keys are never taken from extra.
func withExtraFields(base []byte, extra map[string]any, known []string) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage, len(known)+len(extra))
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if slices.Contains(known, key) {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}
