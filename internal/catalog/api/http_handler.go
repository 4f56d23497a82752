package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lojinha/loja-microservices/internal/catalog/repository"
	"github.com/lojinha/loja-microservices/internal/catalog/service"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// RegisterRoutes mounts the legacy catalog routes at the router root.
func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/produtos", h.ListProducts)
	router.GET("/produtos/:id", h.GetProduct)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao listar produtos"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Produto não encontrado"})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar produto"})
		return
	}
	c.JSON(http.StatusOK, product)
}
