package ports

import (
	"context"

	"github.com/google/uuid"

	"rental-price-service/internal/core/domain"
)

type PredictionFilter struct {
	City   string
	Limit  int
	Offset int
}

// PredictionRepository stores served predictions.
type PredictionRepository interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prediction, error)
	List(ctx context.Context, filter PredictionFilter) ([]*domain.Prediction, int, error)
}
