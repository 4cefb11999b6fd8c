package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/testutil"
)

func TestNewModelService_RequiresRegressor(t *testing.T) {
	_, err := NewModelService(testutil.SampleBundle(nil))
	assert.ErrorIs(t, err, domain.ErrModelNotLoaded)

	_, err = NewModelService(nil)
	assert.ErrorIs(t, err, domain.ErrModelNotLoaded)
}

func TestLoadModelService(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	regressor := new(testutil.MockRegressor)
	loader.On("Load", mock.Anything).Return(testutil.SampleBundle(regressor), nil)

	svc, err := LoadModelService(context.Background(), loader, nil)
	require.NoError(t, err)

	assert.Equal(t, "test-v1", svc.Version())
	assert.Equal(t, "mock", svc.Backend())
	assert.Equal(t, testutil.SampleColumns, svc.Schema().Names())
	loader.AssertExpectations(t)
}

func TestLoadModelService_RegressorOverride(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	remote := new(testutil.MockRegressor)
	loader.On("Load", mock.Anything).Return(testutil.SampleBundle(nil), nil)

	svc, err := LoadModelService(context.Background(), loader, remote)
	require.NoError(t, err)
	assert.Same(t, remote, svc.Regressor())
}

func TestLoadModelService_LoadError(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("Load", mock.Anything).Return(nil, errors.New("no such file"))

	_, err := LoadModelService(context.Background(), loader, nil)
	assert.ErrorContains(t, err, "load model artifact")
}

func TestModelService_Options(t *testing.T) {
	svc, err := NewModelService(testutil.SampleBundle(new(testutil.MockRegressor)))
	require.NoError(t, err)

	opts := svc.Options()
	assert.Equal(t, []string{"Mumbai", "Pune"}, opts.Cities)
	assert.Equal(t, []string{"Kothrud"}, opts.Localities)
	assert.Equal(t, []string{"Unfurnished", "Semi-Furnished", "Furnished"}, opts.Furnishing)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, opts.Bedrooms)
	assert.Equal(t, []int{1, 2, 3, 4}, opts.Bathrooms)
	assert.Equal(t, []int{0, 1, 2, 3}, opts.Balconies)
	assert.Equal(t, 900.0, opts.Area.Default)
	assert.Equal(t, 50.0, opts.AreaRate.Default)
}
