package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCatalogClient_FetchProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/produtos/p1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"p1","nome":"Teclado Mecânico","preco":100,"categorias":["Periféricos"]}`))
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
		assert.Equal(t, "Teclado Mecânico", product.Nome)
		assert.Equal(t, 100.0, product.Preco)
	})

	t.Run("Explicit 404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"erro":"Produto não encontrado"}`))
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Null body maps to not found", func(t *testing.T) {
		// Legacy catalog behavior: 200 with a null body for unknown ids.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`null`))
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Empty body maps to not found", func(t *testing.T) {
		// Some legacy responses carry no body at all, same as null.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Connection refused maps to unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listening anymore

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "p1")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrCatalogUnreachable)
	})

	t.Run("Timeout maps to unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := &httpCatalogClient{
			BaseURL:    srv.URL,
			HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
		}
		product, err := client.FetchProduct(ctx, "p1")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrCatalogUnreachable)
	})

	t.Run("Catalog 5xx maps to unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewHTTPCatalogClient(srv.URL)
		product, err := client.FetchProduct(ctx, "p1")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrCatalogUnreachable)
	})
}
