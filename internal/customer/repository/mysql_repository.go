package repository

import (
	"context"
	"database/sql"

	"github.com/lojinha/loja-microservices/internal/customer/domain"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

type CustomerRepository interface {
	InitSchema(ctx context.Context) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
}

type mysqlCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) CustomerRepository {
	return &mysqlCustomerRepository{db: db}
}

// InitSchema creates the clientes table on first run. IF NOT EXISTS keeps it
// idempotent across restarts.
func (r *mysqlCustomerRepository) InitSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS clientes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(255),
		email VARCHAR(255)
	)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		logger.Error("InitSchema: failed to create clientes table", err)
		return err
	}
	return nil
}

func (r *mysqlCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, nome, email FROM clientes`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCustomers: query failed", err)
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email); err != nil {
			logger.Error("ListCustomers: scan failed", err)
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *mysqlCustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO clientes (nome, email) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, customer.Nome, customer.Email)
	if err != nil {
		logger.Error("CreateCustomer: insert failed", err)
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		logger.Error("CreateCustomer: LastInsertId failed", err)
		return err
	}
	customer.ID = id
	return nil
}
