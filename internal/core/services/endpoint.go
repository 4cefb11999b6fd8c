package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

// ResolveInferenceURL looks up the serving URL of a KServe InferenceService.
// The service must report Ready.
func ResolveInferenceURL(ctx context.Context, kserve ports.KServeClient, namespace, name string) (string, error) {
	if kserve == nil || !kserve.IsAvailable() {
		return "", fmt.Errorf("resolve inference url: kserve client not available")
	}

	status, err := kserve.GetStatus(ctx, namespace, name)
	if err != nil {
		return "", err
	}
	if !status.Ready || status.URL == "" {
		if status.Error != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrInferenceServiceNotReady, status.Error)
		}
		return "", domain.ErrInferenceServiceNotReady
	}

	log.WithFields(log.Fields{
		"namespace": namespace,
		"name":      name,
		"url":       status.URL,
	}).Info("resolved inference service")

	return status.URL, nil
}
