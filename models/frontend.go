// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Frontend is a named deployment target managed through the console.
// Name is the record key: it is chosen on creation and never changed
// afterwards.
type Frontend struct {
	// Name uniquely identifies the record inside the collection.
	Name string `json:"name"`

	// Path is a free-form location of the frontend; required.
	Path string `json:"path"`

	// IsActive reports whether the frontend is switched on.
	IsActive bool `json:"isActive"`

	// CreatedAt is assigned by the remote service and is display-only.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// FrontendUpdate is the body of a partial update. It has no name field:
// the record is addressed by the URL path and its name cannot be changed.
type FrontendUpdate struct {
	Path     *string `json:"path,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateFrom builds a FrontendUpdate carrying every mutable field of f.
func UpdateFrom(f Frontend) FrontendUpdate {
	path := f.Path
	active := f.IsActive
	return FrontendUpdate{Path: &path, IsActive: &active}
}
