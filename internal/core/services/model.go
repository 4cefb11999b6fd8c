package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

// ModelService holds the model bundle loaded at startup. It is read-only
// after construction and safe for concurrent use.
type ModelService struct {
	bundle *ports.ModelBundle
}

// FormOptions are the choices a form offers for each raw field.
type FormOptions struct {
	Cities     []string
	Localities []string
	Furnishing []string
	Bedrooms   []int
	Bathrooms  []int
	Balconies  []int
	Area       domain.Range
	AreaRate   domain.Range
}

func NewModelService(bundle *ports.ModelBundle) (*ModelService, error) {
	if bundle == nil || bundle.Regressor == nil {
		return nil, domain.ErrModelNotLoaded
	}
	if bundle.Schema == nil {
		return nil, &domain.SchemaError{Reason: "no columns"}
	}
	return &ModelService{bundle: bundle}, nil
}

// LoadModelService loads the artifact once. regressor, when non-nil,
// replaces the artifact's own regressor.
func LoadModelService(ctx context.Context, loader ports.ArtifactLoader, regressor ports.Regressor) (*ModelService, error) {
	bundle, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model artifact: %w", err)
	}
	if regressor != nil {
		bundle.Regressor = regressor
	}

	svc, err := NewModelService(bundle)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"version":    bundle.Version,
		"backend":    bundle.Regressor.Name(),
		"features":   bundle.Schema.Len(),
		"cities":     len(bundle.Schema.Cities()),
		"localities": len(bundle.Schema.Localities()),
	}).Info("model loaded")

	return svc, nil
}

func (s *ModelService) Schema() *domain.FeatureSchema {
	return s.bundle.Schema
}

func (s *ModelService) Version() string {
	return s.bundle.Version
}

func (s *ModelService) Backend() string {
	return s.bundle.Regressor.Name()
}

func (s *ModelService) Regressor() ports.Regressor {
	return s.bundle.Regressor
}

func (s *ModelService) Options() FormOptions {
	schema := s.bundle.Schema
	return FormOptions{
		Cities:     schema.Cities(),
		Localities: schema.Localities(),
		Furnishing: domain.FurnishingLabels(),
		Bedrooms:   append([]int(nil), domain.BedroomChoices...),
		Bathrooms:  append([]int(nil), domain.BathroomChoices...),
		Balconies:  append([]int(nil), domain.BalconyChoices...),
		Area:       domain.AreaRange,
		AreaRate:   domain.AreaRateRange,
	}
}
