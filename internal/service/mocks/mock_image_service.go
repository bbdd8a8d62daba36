package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, p service.UploadParams) (string, error) {
	args := m.Called(ctx, r, p)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) UploadProfilePicture(ctx context.Context, r io.Reader, p service.UploadParams) (string, error) {
	args := m.Called(ctx, r, p)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) History(ctx context.Context) ([]model.ProfilePicture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProfilePicture), args.Error(1)
}
