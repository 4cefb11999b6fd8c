package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-price-service/internal/config"
	"rental-price-service/internal/core/domain"
)

func TestClient_Predict(t *testing.T) {
	var got predictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/models/rent-rf:predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"predictions":[25000.5]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.InferenceConfig{URL: srv.URL + "/", ModelName: "rent-rf", Timeout: time.Second})
	price, err := c.Predict(context.Background(), []float64{900, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, 25000.5, price)
	assert.Equal(t, [][]float64{{900, 2, 1}}, got.Instances)
	assert.Equal(t, "kserve-v1:rent-rf", c.Name())
}

func TestClient_Predict_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "X has 8 features, but model is expecting 9", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(&config.InferenceConfig{URL: srv.URL, ModelName: "rent-rf"})
	_, err := c.Predict(context.Background(), []float64{1})

	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
	assert.ErrorContains(t, err, "expecting 9")
}

func TestClient_Predict_WrongPredictionCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.InferenceConfig{URL: srv.URL, ModelName: "rent-rf"})
	_, err := c.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
}

func TestClient_Predict_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(&config.InferenceConfig{URL: url, ModelName: "rent-rf", Timeout: time.Second})
	_, err := c.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
}
