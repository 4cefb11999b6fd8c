package ports

import (
	"context"

	"rental-price-service/internal/core/domain"
)

// Regressor is the opaque prediction half of a model bundle.
type Regressor interface {
	// Predict returns the estimate for one positional input row.
	Predict(ctx context.Context, row []float64) (float64, error)

	// Name identifies the backend in logs and responses
	Name() string
}

// ModelBundle pairs a regressor with the schema its rows must follow.
// Regressor is nil for schema-only artifacts.
type ModelBundle struct {
	Version   string
	Schema    *domain.FeatureSchema
	Regressor Regressor
}

// ArtifactLoader deserializes a model bundle.
type ArtifactLoader interface {
	Load(ctx context.Context) (*ModelBundle, error)
}

// PredictionCache memoizes prices by a key derived from model version and row.
type PredictionCache interface {
	Get(ctx context.Context, key string) (float64, bool)
	Set(ctx context.Context, key string, price float64)
}
