package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-price-service/internal/core/domain"
)

func TestToRawFields(t *testing.T) {
	req := &PredictionRequest{
		Area: 900, Beds: 2, Bathrooms: 2, Balconies: 0,
		Furnishing: "Semi-Furnished", AreaRate: 50,
		City: "Pune", Locality: "Kothrud",
	}

	fields, err := ToRawFields(req)
	require.NoError(t, err)
	assert.Equal(t, domain.SemiFurnished, fields.Furnishing)
	assert.Equal(t, 0, fields.Balconies)
	assert.Equal(t, "Kothrud", fields.Locality)
}

func TestToRawFields_UnknownFurnishing(t *testing.T) {
	_, err := ToRawFields(&PredictionRequest{Furnishing: "Luxury"})
	assert.ErrorIs(t, err, domain.ErrUnknownFurnishing)
}

func TestToPredictionResponse_RowKeepsSchemaOrder(t *testing.T) {
	schema, err := domain.NewFeatureSchema([]string{"city_Pune", "area", "furnishing"})
	require.NoError(t, err)
	fields := domain.RawFields{Area: 900, Furnishing: domain.Furnished, City: "Pune"}
	row := domain.BuildInputRow(schema, fields)

	resp := ToPredictionResponse(&domain.Prediction{
		ID:        uuid.New(),
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Fields:    fields,
		Price:     25000,
		Display:   "₹ 25,000 / month",
		Row:       &row,
	})
	assert.Equal(t, "2024-06-01T10:00:00Z", resp.CreatedAt)
	assert.Equal(t, "Furnished", resp.Input.Furnishing)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"row":{"city_Pune":1,"area":900,"furnishing":2}`)
}

func TestToPredictionResponse_NoRow(t *testing.T) {
	resp := ToPredictionResponse(&domain.Prediction{ID: uuid.New(), CreatedAt: time.Now()})

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), `"row"`)
}
