package service

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// UploadParams describes one incoming image upload.
type UploadParams struct {
	Filename    string
	ContentType string
	Size        int64
	Folder      string
}

const profilePictureFolder = "profile-pictures"

// ImageService is the upload path for all managed media. Declared media
// type and size are checked locally before any network call; violations
// never reach the image store.
type ImageService interface {
	// Upload stores an image under the given folder hint and returns its
	// durable URL.
	Upload(ctx context.Context, r io.Reader, p UploadParams) (string, error)

	// UploadProfilePicture uploads under the profile-pictures folder and
	// appends a history record to the content store. The history write is
	// not transactional with the upload: if it fails the image stays in
	// storage without a history entry.
	UploadProfilePicture(ctx context.Context, r io.Reader, p UploadParams) (string, error)

	// History returns the profile-picture log, most recent first.
	History(ctx context.Context) ([]model.ProfilePicture, error)
}

type imageService struct {
	images   storage.ImageStore
	store    repository.ContentStore
	maxBytes int64
	log      zerolog.Logger
}

// NewImageService constructs an ImageService with the given size ceiling.
func NewImageService(images storage.ImageStore, store repository.ContentStore, maxBytes int64, log zerolog.Logger) ImageService {
	return &imageService{images: images, store: store, maxBytes: maxBytes, log: log}
}

// cleanFolder keeps folder hints to simple relative paths.
func cleanFolder(folder string) string {
	folder = path.Clean("/" + folder)
	return strings.TrimPrefix(folder, "/")
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, p UploadParams) (string, error) {
	if err := storage.ValidateImage(p.ContentType, p.Size, s.maxBytes); err != nil {
		return "", err
	}
	return s.images.Upload(ctx, r, storage.UploadInput{
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		Folder:      cleanFolder(p.Folder),
	})
}

func (s *imageService) UploadProfilePicture(ctx context.Context, r io.Reader, p UploadParams) (string, error) {
	p.Folder = profilePictureFolder
	url, err := s.Upload(ctx, r, p)
	if err != nil {
		return "", err
	}

	_, err = s.store.Create(ctx, model.CollectionProfilePictures, map[string]any{
		"url":        url,
		"fileName":   p.Filename,
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		// Accepted inconsistency: the image exists in storage without a
		// history record; nothing reconciles it later.
		s.log.Warn().Err(err).Str("url", url).Msg("profile picture history write failed")
	}
	return url, nil
}

func (s *imageService) History(ctx context.Context) ([]model.ProfilePicture, error) {
	records, err := s.store.List(ctx, model.CollectionProfilePictures, repository.ListQuery{
		OrderField: "uploadedAt",
	})
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.ProfilePicture](records)
}
