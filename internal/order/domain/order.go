package domain

import (
	"time"
)

// Order carries a snapshot of the product's name and price taken at creation
// time. Later catalog changes must never show up in persisted orders, so the
// record copies the values instead of referencing the product.
type Order struct {
	ID          int64     `json:"id"`
	ClienteID   int64     `json:"cliente_id"`
	ProdutoNome string    `json:"produto_nome"`
	PrecoPago   float64   `json:"preco_pago"` // DECIMAL(10,2) in the store
	Data        time.Time `json:"data"`
}

// CreateOrderRequest keeps the legacy camelCase field names on the wire.
// ProdutoID presence is validated by the workflow, not by binding, so the
// failure maps to the workflow's own error taxonomy.
type CreateOrderRequest struct {
	ClienteID int64  `json:"clienteId"`
	ProdutoID string `json:"produtoId"`
}

type CreateOrderResponse struct {
	Mensagem string `json:"mensagem"`
	Pedido   Order  `json:"pedido"`
}
