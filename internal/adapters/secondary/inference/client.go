package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"rental-price-service/internal/config"
	"rental-price-service/internal/core/domain"
	ports "rental-price-service/internal/core/ports/output"
)

// V1 inference protocol payloads
type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
}

type client struct {
	baseURL   string
	modelName string
	client    *http.Client
}

// NewClient creates a regressor backed by a remote model server speaking
// the KServe V1 protocol.
func NewClient(cfg *config.InferenceConfig) ports.Regressor {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &client{
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		modelName: cfg.ModelName,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) Predict(ctx context.Context, row []float64) (float64, error) {
	body, err := json.Marshal(predictRequest{Instances: [][]float64{row}})
	if err != nil {
		return 0, fmt.Errorf("marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", c.baseURL, c.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"url":      url,
		"features": len(row),
	}).Debug("forwarding prediction to model server")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInferenceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("%w: status %d: %s", domain.ErrInferenceFailed, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", domain.ErrInferenceFailed, err)
	}
	if len(out.Predictions) != 1 {
		return 0, fmt.Errorf("%w: expected 1 prediction, got %d", domain.ErrInferenceFailed, len(out.Predictions))
	}

	return out.Predictions[0], nil
}

func (c *client) Name() string {
	return "kserve-v1:" + c.modelName
}
