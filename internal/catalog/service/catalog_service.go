package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lojinha/loja-microservices/internal/catalog/domain"
	"github.com/lojinha/loja-microservices/internal/catalog/repository"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	EnsureSeedData(ctx context.Context) error
}

type catalogServiceImpl struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}

// EnsureSeedData populates the catalog with demo products on first run.
// Counting first makes the operation idempotent: a second startup against the
// same store inserts nothing.
func (s *catalogServiceImpl) EnsureSeedData(ctx context.Context) error {
	count, err := s.repo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []domain.Product{
		{ID: uuid.NewString(), Nome: "Notebook Gamer", Preco: 1500, Categorias: []string{"Eletrônicos"}},
		{ID: uuid.NewString(), Nome: "Teclado Mecânico", Preco: 100, Categorias: []string{"Periféricos"}},
		{ID: uuid.NewString(), Nome: "Monitor 4K", Preco: 400, Categorias: []string{"Eletrônicos"}},
	}
	if err := s.repo.InsertProducts(ctx, seed); err != nil {
		return err
	}
	logger.Info("catalog seeded with demo products", zap.Int("count", len(seed)))
	return nil
}
