// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// File is a single blob selected for upload.
type File struct {
	// Name is the original file name sent as the multipart file name.
	Name string

	// ContentType is optional; an empty value lets the transport guess.
	ContentType string

	// Data is the full file content.
	Data []byte
}

// Size returns the length of the file content in bytes.
func (f File) Size() int64 {
	return int64(len(f.Data))
}

// SizeKB formats the file size in kilobytes with two decimals, e.g. "1.50 KB".
func (f File) SizeKB() string {
	return fmt.Sprintf("%.2f KB", float64(f.Size())/1024)
}

// UploadResult is the service reply to a successful upload.
type UploadResult struct {
	Message string `json:"message"`
}
