package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

const (
	ModelTypeRandomForest = "random_forest"
	ModelTypeLinear       = "linear"
)

// bundleFile is the on-disk model bundle: the ordered feature names and
// the fitted model they feed.
type bundleFile struct {
	ModelType    string      `json:"model_type"`
	Version      string      `json:"version"`
	FeatureNames []string    `json:"feature_names"`
	Forest       *forestSpec `json:"forest,omitempty"`
	Linear       *linearSpec `json:"linear,omitempty"`
}

type fileLoader struct {
	path string
}

// NewFileLoader reads a JSON model bundle from path.
func NewFileLoader(path string) ports.ArtifactLoader {
	return &fileLoader{path: path}
}

func (l *fileLoader) Load(ctx context.Context) (*ports.ModelBundle, error) {
	payload, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}
	return Decode(payload)
}

// Decode parses a bundle. A bundle without model_type is schema-only and
// carries no regressor.
func Decode(payload []byte) (*ports.ModelBundle, error) {
	var file bundleFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode model bundle: %w", err)
	}

	schema, err := domain.NewFeatureSchema(file.FeatureNames)
	if err != nil {
		return nil, err
	}

	bundle := &ports.ModelBundle{
		Version: file.Version,
		Schema:  schema,
	}

	switch file.ModelType {
	case "":
	case ModelTypeRandomForest:
		if file.Forest == nil {
			return nil, fmt.Errorf("%w: missing forest block", domain.ErrInvalidModel)
		}
		forest, err := newForest(*file.Forest, schema.Len())
		if err != nil {
			return nil, err
		}
		bundle.Regressor = forest
	case ModelTypeLinear:
		if file.Linear == nil {
			return nil, fmt.Errorf("%w: missing linear block", domain.ErrInvalidModel)
		}
		linear, err := newLinear(*file.Linear, schema.Len())
		if err != nil {
			return nil, err
		}
		bundle.Regressor = linear
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedModelType, file.ModelType)
	}

	return bundle, nil
}
