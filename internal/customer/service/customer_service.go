package service

import (
	"context"

	"github.com/lojinha/loja-microservices/internal/customer/domain"
	"github.com/lojinha/loja-microservices/internal/customer/repository"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error)
}

type customerServiceImpl struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerServiceImpl{repo: repo}
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		Nome:  req.Nome,
		Email: req.Email,
	}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
