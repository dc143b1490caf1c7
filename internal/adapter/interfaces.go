// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the frontends
// service.
//
// The primary abstraction is [FrontendAdapter], which decouples the console
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPFrontendAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is]; every failure, transport
// or status, also matches [ErrRequestFailed].
package adapter

import (
	"context"

	"github.com/MKhiriev/frontend-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/frontend_adapter_mock.go -package=mock

// FrontendAdapter wraps the five remote operations of the frontends service.
// Every call is a single attempt: nothing is retried or cached.
type FrontendAdapter interface {
	// GetAll lists every frontend record. GET /frontends
	GetAll(ctx context.Context) ([]models.Frontend, error)

	// Add creates a record from the full frontend value and returns the
	// service's canonical copy, which may carry CreatedAt. POST /frontends
	Add(ctx context.Context, frontend models.Frontend) (models.Frontend, error)

	// Update changes the mutable fields of the record called name.
	// PUT /frontends/{name}
	Update(ctx context.Context, name string, update models.FrontendUpdate) (models.Frontend, error)

	// Delete removes the record called name. DELETE /frontends/{name}
	Delete(ctx context.Context, name string) error

	// UploadFiles sends files as one multipart body, one "files" part per
	// file. POST /frontends/{name}/upload
	UploadFiles(ctx context.Context, name string, files []models.File) (models.UploadResult, error)
}
