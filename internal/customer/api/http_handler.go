package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lojinha/loja-microservices/internal/customer/domain"
	"github.com/lojinha/loja-microservices/internal/customer/service"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(cs service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// RegisterRoutes mounts the legacy customer routes at the router root.
func (h *CustomerHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/clientes", h.ListCustomers)
	router.POST("/clientes", h.CreateCustomer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("ListCustomers: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao listar clientes"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateCustomer: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"erro": "nome e email são obrigatórios"})
		return
	}

	if _, err := h.customerService.CreateCustomer(c.Request.Context(), req); err != nil {
		logger.Error("CreateCustomer: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao cadastrar cliente"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Cliente cadastrado"})
}
