package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Package storage contains the image-hosting abstraction over S3-compatible
// object stores. Implementations must avoid local disk and rely on
// streaming I/O only.

var (
	// ErrNotImage rejects payloads whose declared media type is not image/*.
	ErrNotImage = errors.New("file is not an image")
	// ErrTooLarge rejects payloads over the configured size ceiling.
	ErrTooLarge = errors.New("file exceeds maximum size")
)

// UploadInput describes one image upload. Folder is a path hint under which
// the object key is generated (e.g. "profile-pictures", "blogs/<id>").
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Folder      string
}

// ImageStore uploads a binary payload and returns a durable HTTPS URL.
// No list or delete contract is needed; history views are served from the
// content store's logged metadata instead.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader, in UploadInput) (string, error)
}

// ValidateImage applies the local pre-flight checks: the declared media
// type must begin with "image/" and the size must not exceed maxBytes.
// Violations are rejected before any network call is issued.
func ValidateImage(contentType string, size, maxBytes int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > maxBytes {
		return ErrTooLarge
	}
	return nil
}
