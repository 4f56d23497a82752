package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lojinha/loja-microservices/internal/order/domain"
	"github.com/lojinha/loja-microservices/internal/order/repository"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"github.com/lojinha/loja-microservices/internal/platform/metrics"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequest     = errors.New("produtoId é obrigatório")
	ErrProductUnavailable = errors.New("produto indisponível")
	ErrOrderPersistence   = errors.New("erro ao gravar pedido")
)

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type orderServiceImpl struct {
	orderRepo     repository.OrderRepository
	catalogClient CatalogClient
}

func NewOrderService(or repository.OrderRepository, cc CatalogClient) OrderService {
	return &orderServiceImpl{
		orderRepo:     or,
		catalogClient: cc,
	}
}

// CreateOrder fetches the product from the catalog service and persists an
// order carrying a snapshot of its name and price. Lookup failures are not
// retried here, and a persistence failure after a successful lookup is not
// compensated: nothing was written, so the client may simply retry.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if req.ProdutoID == "" {
		metrics.OrderFailures.WithLabelValues("invalid_request").Inc()
		return nil, ErrInvalidRequest
	}

	product, err := s.catalogClient.FetchProduct(ctx, req.ProdutoID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			metrics.OrderFailures.WithLabelValues("product_not_found").Inc()
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, req.ProdutoID)
		}
		logger.Error("CreateOrder: catalog lookup failed", err, zap.String("produto_id", req.ProdutoID))
		metrics.OrderFailures.WithLabelValues("upstream_failure").Inc()
		return nil, err
	}

	// ClienteID is taken verbatim from the request; the legacy workflow never
	// checked it against the customer store and that behavior is preserved.
	order := &domain.Order{
		ClienteID:   req.ClienteID,
		ProdutoNome: product.Nome,
		PrecoPago:   product.Preco,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		logger.Error("CreateOrder: failed to persist order", err, zap.String("produto_id", req.ProdutoID))
		metrics.OrderFailures.WithLabelValues("persistence_failure").Inc()
		return nil, fmt.Errorf("%w: %v", ErrOrderPersistence, err)
	}

	metrics.OrdersCreated.Inc()
	logger.Info("pedido criado",
		zap.Int64("pedido_id", order.ID),
		zap.Int64("cliente_id", order.ClienteID),
		zap.String("produto_nome", order.ProdutoNome),
		zap.Float64("preco_pago", order.PrecoPago),
	)
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListOrders(ctx)
}
