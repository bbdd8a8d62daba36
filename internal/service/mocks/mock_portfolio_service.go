package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/service"
)

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Load(ctx context.Context) (*service.PortfolioData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PortfolioData), args.Error(1)
}
