package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

type PredictionService struct {
	model          *ModelService
	cache          ports.PredictionCache
	history        ports.PredictionRepository
	currencySymbol string
}

// NewPredictionService wires the loaded model with optional cache and
// history store; either may be nil.
func NewPredictionService(model *ModelService, cache ports.PredictionCache, history ports.PredictionRepository, currencySymbol string) *PredictionService {
	return &PredictionService{
		model:          model,
		cache:          cache,
		history:        history,
		currencySymbol: currencySymbol,
	}
}

// Predict builds the input row for fields and asks the regressor for a
// price. Regressor errors are returned as-is.
func (s *PredictionService) Predict(ctx context.Context, fields domain.RawFields) (*domain.Prediction, error) {
	row := domain.BuildInputRow(s.model.Schema(), fields)
	key := s.model.Version() + "|" + row.Key()

	price, cached := s.lookup(ctx, key)
	if !cached {
		var err error
		price, err = s.model.Regressor().Predict(ctx, row.Values())
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(ctx, key, price)
		}
	}

	prediction := &domain.Prediction{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		ModelVersion: s.model.Version(),
		Fields:       fields,
		Price:        price,
		Display:      domain.FormatMonthlyRent(price, s.currencySymbol),
		Cached:       cached,
		Row:          &row,
	}

	if s.history != nil {
		if err := s.history.Create(ctx, prediction); err != nil {
			log.WithError(err).WithField("prediction_id", prediction.ID).Warn("record prediction failed")
		}
	}

	return prediction, nil
}

func (s *PredictionService) lookup(ctx context.Context, key string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	return s.cache.Get(ctx, key)
}

func (s *PredictionService) Get(ctx context.Context, id uuid.UUID) (*domain.Prediction, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if id == uuid.Nil {
		return nil, domain.ErrInvalidPredictionID
	}
	return s.history.GetByID(ctx, id)
}

func (s *PredictionService) List(ctx context.Context, filter ports.PredictionFilter) ([]*domain.Prediction, int, error) {
	if s.history == nil {
		return nil, 0, domain.ErrHistoryDisabled
	}
	return s.history.List(ctx, NormalizeFilter(filter))
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizeFilter clamps the page size to (0, 100] and the offset to >= 0.
func NormalizeFilter(filter ports.PredictionFilter) ports.PredictionFilter {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
