package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/storage"
)

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, r io.Reader, in storage.UploadInput) (string, error) {
	args := m.Called(ctx, r, in)
	return args.String(0), args.Error(1)
}
