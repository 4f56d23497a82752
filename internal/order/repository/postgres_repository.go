package repository

import (
	"context"
	"database/sql"

	"github.com/lojinha/loja-microservices/internal/order/domain"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

type OrderRepository interface {
	InitSchema(ctx context.Context) error
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type postgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) OrderRepository {
	return &postgresOrderRepository{db: db}
}

// InitSchema creates the pedidos table on first run. IF NOT EXISTS keeps it
// idempotent across restarts.
func (r *postgresOrderRepository) InitSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS pedidos (
		id SERIAL PRIMARY KEY,
		cliente_id INT,
		produto_nome VARCHAR(255),
		preco_pago DECIMAL(10,2),
		data TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		logger.Error("InitSchema: failed to create pedidos table", err)
		return err
	}
	return nil
}

// CreateOrder inserts the snapshot and reads the store-assigned id and
// timestamp back in the same statement, so no partially populated order is
// ever observable.
func (r *postgresOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	query := `INSERT INTO pedidos (cliente_id, produto_nome, preco_pago)
              VALUES ($1, $2, $3) RETURNING id, data`

	err := r.db.QueryRowContext(ctx, query, order.ClienteID, order.ProdutoNome, order.PrecoPago).
		Scan(&order.ID, &order.Data)
	if err != nil {
		logger.Error("CreateOrder: failed to insert order", err)
		return err
	}
	return nil
}

func (r *postgresOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT id, cliente_id, produto_nome, preco_pago, data FROM pedidos ORDER BY data DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListOrders: query failed", err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.ClienteID, &o.ProdutoNome, &o.PrecoPago, &o.Data); err != nil {
			logger.Error("ListOrders: scan failed", err)
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
