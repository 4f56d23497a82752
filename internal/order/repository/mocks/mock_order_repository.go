package mocks

import (
	"context"
	"time"

	"github.com/lojinha/loja-microservices/internal/order/domain"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	if order != nil && args.Error(0) == nil {
		// Simulate the store's insert-and-return population.
		order.ID = 42
		order.Data = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
