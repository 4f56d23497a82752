package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	catalogDomain "github.com/lojinha/loja-microservices/internal/catalog/domain"
	"github.com/lojinha/loja-microservices/internal/platform/logger"
)

var (
	// ErrProductNotFound means the catalog answered and does not have the product.
	ErrProductNotFound = errors.New("produto não encontrado no catálogo")
	// ErrCatalogUnreachable means the catalog could not be reached or did not
	// answer in time. The two transport failures share one sentinel because the
	// workflow maps both to the same upstream-failure outcome; the wrapped
	// error keeps them distinguishable in logs.
	ErrCatalogUnreachable = errors.New("serviço de catálogo indisponível")
)

// CatalogClient fetches a product from the remote catalog service. A call is
// a single attempt; retries, if any, belong to the caller.
type CatalogClient interface {
	FetchProduct(ctx context.Context, productID string) (*catalogDomain.Product, error)
}

type httpCatalogClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPCatalogClient(baseURL string) CatalogClient {
	return &httpCatalogClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *httpCatalogClient) FetchProduct(ctx context.Context, productID string) (*catalogDomain.Product, error) {
	reqURL := fmt.Sprintf("%s/produtos/%s", c.BaseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Error("CatalogClient.FetchProduct: NewRequest failed", err)
		return nil, fmt.Errorf("failed to create request to catalog service: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("CatalogClient.FetchProduct: HTTPClient.Do failed", err)
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: timeout: %v", ErrCatalogUnreachable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: catalog returned status %d", ErrCatalogUnreachable, resp.StatusCode)
	}

	// The legacy catalog resolves unknown but well-formed ids to a JSON null
	// (or entirely empty) body with status 200, so decode into a pointer and
	// treat both as absent.
	var product *catalogDomain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrProductNotFound
		}
		logger.Error("CatalogClient.FetchProduct: JSON decode failed", err)
		return nil, fmt.Errorf("%w: failed to decode catalog response: %v", ErrCatalogUnreachable, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
