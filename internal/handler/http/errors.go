// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoOpenForm is returned when a form is posted while no form is open.
	ErrNoOpenForm = errors.New("no form is open")

	// ErrNoOpenUploader is returned when files are posted while no uploader
	// is open.
	ErrNoOpenUploader = errors.New("no uploader is open")

	// ErrUploadTooLarge is returned when the upload body exceeds the
	// configured limit.
	ErrUploadTooLarge = errors.New("upload is too large")

	// ErrMalformedRequest is returned when a posted form or upload body can
	// not be parsed.
	ErrMalformedRequest = errors.New("malformed request")
)
