package testutil

import (
	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

// SampleColumns is a small schema in the shape of the trained rent model.
var SampleColumns = []string{
	"area", "beds", "bathrooms", "balconies", "furnishing", "area_rate",
	"city_Pune", "city_Mumbai", "locality_Kothrud",
}

// SampleBundle wraps SampleColumns and regressor into a bundle.
func SampleBundle(regressor ports.Regressor) *ports.ModelBundle {
	schema, err := domain.NewFeatureSchema(SampleColumns)
	if err != nil {
		panic(err)
	}
	return &ports.ModelBundle{
		Version:   "test-v1",
		Schema:    schema,
		Regressor: regressor,
	}
}

// SampleFields matches SampleColumns with every category known.
func SampleFields() domain.RawFields {
	return domain.RawFields{
		Area:       900,
		Beds:       2,
		Bathrooms:  2,
		Balconies:  1,
		Furnishing: domain.Furnished,
		AreaRate:   50,
		City:       "Pune",
		Locality:   "Kothrud",
	}
}
