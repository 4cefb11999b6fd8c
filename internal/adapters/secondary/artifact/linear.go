package artifact

import (
	"context"
	"fmt"

	"rental-price-service/internal/core/domain"
)

type linearSpec struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

type linear struct {
	intercept float64
	weights   []float64
}

func newLinear(spec linearSpec, nFeatures int) (*linear, error) {
	if len(spec.Coefficients) != nFeatures {
		return nil, fmt.Errorf("%w: %d coefficients for %d features",
			domain.ErrInvalidModel, len(spec.Coefficients), nFeatures)
	}
	return &linear{intercept: spec.Intercept, weights: spec.Coefficients}, nil
}

func (l *linear) Predict(ctx context.Context, row []float64) (float64, error) {
	if len(row) != len(l.weights) {
		return 0, fmt.Errorf("%w: got %d values, want %d", domain.ErrShapeMismatch, len(row), len(l.weights))
	}
	y := l.intercept
	for i, w := range l.weights {
		y += w * row[i]
	}
	return y, nil
}

func (l *linear) Name() string {
	return ModelTypeLinear
}
