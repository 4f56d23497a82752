package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lojinha/loja-microservices/internal/order/domain"
	"github.com/lojinha/loja-microservices/internal/order/service"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(os service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// RegisterRoutes mounts the legacy order routes at the router root.
func (h *OrderHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/pedidos", h.CreateOrder)
	router.GET("/pedidos", h.ListOrders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateOrder: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"erro": "corpo da requisição inválido"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
		case errors.Is(err, service.ErrProductUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"erro": "Produto indisponível"})
		case errors.Is(err, service.ErrCatalogUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{"erro": "Erro ao consultar catálogo"})
		case errors.Is(err, service.ErrOrderPersistence):
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao processar pedido"})
		default:
			logger.Error("CreateOrder: unhandled service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao processar pedido"})
		}
		return
	}

	c.JSON(http.StatusCreated, domain.CreateOrderResponse{
		Mensagem: "Pedido criado com sucesso!",
		Pedido:   *order,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("ListOrders: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao listar pedidos"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
