package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-price-service/internal/core/domain"
)

func TestFileLoader_Load(t *testing.T) {
	bundle, err := NewFileLoader(filepath.Join("testdata", "bundle.json")).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "rf-test", bundle.Version)
	assert.Equal(t, 9, bundle.Schema.Len())
	assert.Equal(t, []string{"Mumbai", "Pune"}, bundle.Schema.Cities())
	require.NotNil(t, bundle.Regressor)
	assert.Equal(t, ModelTypeRandomForest, bundle.Regressor.Name())
}

func TestFileLoader_PredictsBuiltRows(t *testing.T) {
	bundle, err := NewFileLoader(filepath.Join("testdata", "bundle.json")).Load(context.Background())
	require.NoError(t, err)

	fields := domain.RawFields{
		Area: 900, Beds: 2, Bathrooms: 2, Balconies: 1,
		Furnishing: domain.Furnished, AreaRate: 50,
		City: "Pune", Locality: "Kothrud",
	}
	row := domain.BuildInputRow(bundle.Schema, fields)
	price, err := bundle.Regressor.Predict(context.Background(), row.Values())
	require.NoError(t, err)
	assert.Equal(t, 25000.0, price)

	fields.City = "Nagpur"
	row = domain.BuildInputRow(bundle.Schema, fields)
	price, err = bundle.Regressor.Predict(context.Background(), row.Values())
	require.NoError(t, err)
	assert.Equal(t, 17500.0, price)

	fields.City = "Pune"
	fields.Area = 1200
	row = domain.BuildInputRow(bundle.Schema, fields)
	price, err = bundle.Regressor.Predict(context.Background(), row.Values())
	require.NoError(t, err)
	assert.Equal(t, 35000.0, price)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_SchemaOnly(t *testing.T) {
	bundle, err := Decode([]byte(`{"version":"remote-v2","feature_names":["area","city_Pune"]}`))
	require.NoError(t, err)
	assert.Nil(t, bundle.Regressor)
	assert.Equal(t, []string{"Pune"}, bundle.Schema.Cities())
}

func TestDecode_InvalidSchema(t *testing.T) {
	_, err := Decode([]byte(`{"feature_names":["area","area"]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidSchema)

	_, err = Decode([]byte(`{"feature_names":[]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidSchema)
}

func TestDecode_UnsupportedType(t *testing.T) {
	_, err := Decode([]byte(`{"model_type":"xgboost","feature_names":["area"]}`))
	assert.ErrorIs(t, err, domain.ErrUnsupportedModelType)
}

func TestDecode_MissingModelBlock(t *testing.T) {
	_, err := Decode([]byte(`{"model_type":"random_forest","feature_names":["area"]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidModel)

	_, err = Decode([]byte(`{"model_type":"linear","feature_names":["area"]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.ErrorContains(t, err, "decode model bundle")
}

func TestFileLoader_ShippedModel(t *testing.T) {
	bundle, err := NewFileLoader(filepath.Join("..", "..", "..", "..", "models", "rental_price_model.json")).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bangalore", "Mumbai", "Pune"}, bundle.Schema.Cities())
	assert.Equal(t, []string{"Andheri", "Kothrud", "Whitefield"}, bundle.Schema.Localities())

	row := domain.BuildInputRow(bundle.Schema, domain.RawFields{
		Area: 900, Beds: 2, Bathrooms: 2, Balconies: 1,
		Furnishing: domain.Furnished, AreaRate: 50,
		City: "Pune", Locality: "Kothrud",
	})
	price, err := bundle.Regressor.Predict(context.Background(), row.Values())
	require.NoError(t, err)
	assert.Equal(t, 23000.0, price)
}
