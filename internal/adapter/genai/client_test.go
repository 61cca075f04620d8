package genai_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mkhalid/poshak/internal/adapter/genai"
	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeProductDetails(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/product-details", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var req map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "https://img/raw.jpg", req["image_url"])

				_ = json.NewEncoder(w).Encode(map[string]any{
					"name":            "Lawn Kurta",
					"description":     "Light embroidered kurta",
					"category":        "Tops",
					"suggested_price": 35.5,
				})
			}))
		defer srv.Close()

		cl := genai.New(srv.URL, "test-key")

		d, err := cl.ComposeProductDetails(t.Context(), "https://img/raw.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Lawn Kurta", d.Name)
		assert.Equal(t, domain.Category("Tops"), d.Category)
		assert.InDelta(t, 35.5, d.SuggestedPrice, 1e-9)
	})

	t.Run("EndpointError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "image is not a garment",
				})
			}))
		defer srv.Close()

		cl := genai.New(srv.URL, "test-key")

		_, err := cl.ComposeProductDetails(t.Context(), "https://img/cat.jpg")
		require.Error(t, err)
		assert.ErrorIs(t, err, genai.ErrGeneration)
		assert.Contains(t, err.Error(), "image is not a garment")
	})

	t.Run("RetriesOn5xx", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) == 1 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_ = json.NewEncoder(w).Encode(map[string]any{"name": "Kurta"})
			}))
		defer srv.Close()

		cl := genai.New(srv.URL, "test-key")

		d, err := cl.ComposeProductDetails(t.Context(), "https://img/raw.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Kurta", d.Name)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("NoRetryOn4xx", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusUnauthorized)
			}))
		defer srv.Close()

		cl := genai.New(srv.URL, "bad-key")

		_, err := cl.ComposeProductDetails(t.Context(), "https://img/raw.jpg")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestComposeTryOn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/try-on", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"image_url": "https://img/composed.jpg",
			})
		}))
	defer srv.Close()

	cl := genai.New(srv.URL, "test-key")

	url, err := cl.ComposeTryOn(
		t.Context(), "https://img/me.jpg", "https://img/p1.jpg",
	)
	require.NoError(t, err)
	assert.Equal(t, "https://img/composed.jpg", url)
}

func TestComposeStyleAdvice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"suggestions": []string{"add a denim jacket", "white sneakers"},
			})
		}))
	defer srv.Close()

	cl := genai.New(srv.URL, "test-key")

	advice, err := cl.ComposeStyleAdvice(t.Context(), domain.Product{
		Name: "Red Dress", Category: domain.CategoryDresses,
	})
	require.NoError(t, err)
	assert.Len(t, advice.Suggestions, 2)
}
