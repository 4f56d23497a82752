package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	catalogDomain "github.com/lojinha/loja-microservices/internal/catalog/domain"
	"github.com/lojinha/loja-microservices/internal/order/domain"
	"github.com/lojinha/loja-microservices/internal/order/repository/mocks"
	clientMocks "github.com/lojinha/loja-microservices/internal/order/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.TODO()

	t.Run("Successful creation snapshots name and price", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		product := &catalogDomain.Product{ID: "p1", Nome: "Teclado Mecânico", Preco: 100}
		mockCatalog.On("FetchProduct", ctx, "p1").Return(product, nil).Once()
		mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7, ProdutoID: "p1"})

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, int64(7), order.ClienteID)
		assert.Equal(t, "Teclado Mecânico", order.ProdutoNome)
		assert.Equal(t, 100.0, order.PrecoPago)
		assert.NotZero(t, order.ID)   // assigned by the store (mock)
		assert.False(t, order.Data.IsZero())
		mockOrderRepo.AssertExpectations(t)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Snapshot is decoupled from later catalog mutations", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		product := &catalogDomain.Product{ID: "p1", Nome: "Teclado Mecânico", Preco: 100}
		mockCatalog.On("FetchProduct", ctx, "p1").Return(product, nil).Once()
		mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7, ProdutoID: "p1"})
		assert.NoError(t, err)

		// The catalog record changes after the order is created.
		product.Nome = "Teclado Mecânico RGB"
		product.Preco = 250

		assert.Equal(t, "Teclado Mecânico", order.ProdutoNome)
		assert.Equal(t, 100.0, order.PrecoPago)
	})

	t.Run("Missing produtoId fails before any lookup or write", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		mockCatalog.AssertNotCalled(t, "FetchProduct")
		mockOrderRepo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Product not in catalog fails with no store write", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		mockCatalog.On("FetchProduct", ctx, "missing").Return(nil, ErrProductNotFound).Once()

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7, ProdutoID: "missing"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrProductUnavailable)
		assert.Contains(t, err.Error(), "missing")
		mockOrderRepo.AssertNotCalled(t, "CreateOrder")
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Catalog unreachable fails with no store write", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		upstreamErr := fmt.Errorf("%w: connection refused", ErrCatalogUnreachable)
		mockCatalog.On("FetchProduct", ctx, "p1").Return(nil, upstreamErr).Once()

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7, ProdutoID: "p1"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrCatalogUnreachable)
		mockOrderRepo.AssertNotCalled(t, "CreateOrder")
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Persistence failure after successful lookup", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCatalog := new(clientMocks.MockCatalogClient)
		orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)

		product := &catalogDomain.Product{ID: "p1", Nome: "Teclado Mecânico", Preco: 100}
		mockCatalog.On("FetchProduct", ctx, "p1").Return(product, nil).Once()
		repoErr := errors.New("connection reset by peer")
		mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(repoErr).Once()

		order, err := orderServiceInstance.CreateOrder(ctx, domain.CreateOrderRequest{ClienteID: 7, ProdutoID: "p1"})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrOrderPersistence)
		assert.Contains(t, err.Error(), repoErr.Error())
		mockOrderRepo.AssertExpectations(t)
		mockCatalog.AssertExpectations(t)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	mockOrderRepo := new(mocks.MockOrderRepository)
	mockCatalog := new(clientMocks.MockCatalogClient)
	orderServiceInstance := NewOrderService(mockOrderRepo, mockCatalog)
	ctx := context.TODO()

	expected := []domain.Order{
		{ID: 1, ClienteID: 7, ProdutoNome: "Teclado Mecânico", PrecoPago: 100},
	}
	mockOrderRepo.On("ListOrders", ctx).Return(expected, nil).Once()

	orders, err := orderServiceInstance.ListOrders(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockOrderRepo.AssertExpectations(t)
}
