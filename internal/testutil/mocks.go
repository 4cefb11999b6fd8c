package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

// MockRegressor is a mock of Regressor.
type MockRegressor struct {
	mock.Mock
}

func (m *MockRegressor) Predict(ctx context.Context, row []float64) (float64, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRegressor) Name() string {
	return "mock"
}

// MockArtifactLoader is a mock of ArtifactLoader.
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) Load(ctx context.Context) (*ports.ModelBundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ModelBundle), args.Error(1)
}

// MockPredictionRepo is a mock of PredictionRepository.
type MockPredictionRepo struct {
	mock.Mock
}

func (m *MockPredictionRepo) Create(ctx context.Context, prediction *domain.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepo) List(ctx context.Context, filter ports.PredictionFilter) ([]*domain.Prediction, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Prediction), args.Int(1), args.Error(2)
}

// MockPredictionCache is a mock of PredictionCache.
type MockPredictionCache struct {
	mock.Mock
}

func (m *MockPredictionCache) Get(ctx context.Context, key string) (float64, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockPredictionCache) Set(ctx context.Context, key string, price float64) {
	m.Called(ctx, key, price)
}

// MockKServeClient is a mock of KServeClient.
type MockKServeClient struct {
	mock.Mock
}

func (m *MockKServeClient) GetStatus(ctx context.Context, namespace, name string) (*ports.KServeStatus, error) {
	args := m.Called(ctx, namespace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.KServeStatus), args.Error(1)
}

func (m *MockKServeClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}
