package mocks

import (
	"context"

	catalogDomain "github.com/lojinha/loja-microservices/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) FetchProduct(ctx context.Context, productID string) (*catalogDomain.Product, error) {
	args := m.Called(ctx, productID)
	if res := args.Get(0); res != nil {
		return res.(*catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
