package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lojinha/loja-microservices/internal/customer/domain"
	"github.com/lojinha/loja-microservices/internal/customer/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerService_CreateCustomer(t *testing.T) {
	mockRepo := new(mocks.MockCustomerRepository)
	customerServiceInstance := NewCustomerService(mockRepo)
	ctx := context.TODO()

	req := domain.CreateCustomerRequest{Nome: "Maria Silva", Email: "maria@example.com"}

	t.Run("Successful creation", func(t *testing.T) {
		mockRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil).Once()

		customer, err := customerServiceInstance.CreateCustomer(ctx, req)

		assert.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, req.Nome, customer.Nome)
		assert.Equal(t, req.Email, customer.Email)
		assert.NotZero(t, customer.ID) // ID assigned by the store (mock)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		repoErr := errors.New("mysql gone away")
		mockRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*domain.Customer")).Return(repoErr).Once()

		customer, err := customerServiceInstance.CreateCustomer(ctx, req)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_ListCustomers(t *testing.T) {
	mockRepo := new(mocks.MockCustomerRepository)
	customerServiceInstance := NewCustomerService(mockRepo)
	ctx := context.TODO()

	expected := []domain.Customer{
		{ID: 1, Nome: "Maria Silva", Email: "maria@example.com"},
		{ID: 2, Nome: "João Souza", Email: "joao@example.com"},
	}
	mockRepo.On("ListCustomers", ctx).Return(expected, nil).Once()

	customers, err := customerServiceInstance.ListCustomers(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
	mockRepo.AssertExpectations(t)
}
