package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeatureSchema_Empty(t *testing.T) {
	_, err := NewFeatureSchema(nil)
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestNewFeatureSchema_Duplicate(t *testing.T) {
	_, err := NewFeatureSchema([]string{"area", "beds", "area"})
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "area", schemaErr.Column)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestNewFeatureSchema_EmptyName(t *testing.T) {
	_, err := NewFeatureSchema([]string{"area", ""})
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestFeatureSchema_Lookup(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"area", "beds", "city_Pune"})
	require.NoError(t, err)

	assert.Equal(t, 3, schema.Len())
	assert.Equal(t, 2, schema.Index("city_Pune"))
	assert.Equal(t, -1, schema.Index("city_Mumbai"))
	assert.True(t, schema.Has("beds"))
	assert.False(t, schema.Has("bathrooms"))
}

func TestFeatureSchema_NamesIsCopy(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"area", "beds"})
	require.NoError(t, err)

	names := schema.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"area", "beds"}, schema.Names())
}

func TestFeatureSchema_SortedDomains(t *testing.T) {
	schema, err := NewFeatureSchema([]string{
		"area", "city_Pune", "city_Mumbai", "city_Bangalore",
		"locality_Kothrud", "locality_Andheri",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Bangalore", "Mumbai", "Pune"}, schema.Cities())
	assert.Equal(t, []string{"Andheri", "Kothrud"}, schema.Localities())
}

func TestExtractDomain(t *testing.T) {
	schema, err := NewFeatureSchema([]string{
		"area", "city_Pune", "city_Mumbai", "locality_Kothrud", "cityscape",
	})
	require.NoError(t, err)

	cities := ExtractDomain(schema, CityPrefix)
	assert.Equal(t, map[string]struct{}{"Pune": {}, "Mumbai": {}}, cities)

	localities := ExtractDomain(schema, LocalityPrefix)
	assert.Equal(t, map[string]struct{}{"Kothrud": {}}, localities)
}

func TestExtractDomain_Idempotent(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"city_Pune", "city_Mumbai", "locality_Kothrud"})
	require.NoError(t, err)

	first := ExtractDomain(schema, CityPrefix)
	second := ExtractDomain(schema, CityPrefix)
	assert.Equal(t, first, second)
}

func TestExtractDomain_TruncatesAtSeparator(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"locality_Baner_Road", "locality_Baner", "city_New_Delhi"})
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{"Baner": {}}, ExtractDomain(schema, LocalityPrefix))
	assert.Equal(t, map[string]struct{}{"New": {}}, ExtractDomain(schema, CityPrefix))
}

func TestExtractDomain_PrefixWithoutSeparator(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"city_Pune"})
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{"Pune": {}}, ExtractDomain(schema, "city"))
}

func TestExtractDomain_DoubleSeparatorYieldsNothing(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"city__Pune", "city_", "locality_Baner_Road"})
	require.NoError(t, err)

	assert.Empty(t, ExtractDomain(schema, CityPrefix))
	assert.Equal(t, map[string]struct{}{"Baner": {}}, ExtractDomain(schema, LocalityPrefix))

	// no offered city can point at a column the row builder cannot find
	row := BuildInputRow(schema, RawFields{City: "Pune", Locality: "Baner"})
	assert.Equal(t, []float64{0, 0, 0}, row.Values())
}

func TestExtractDomain_NoMatches(t *testing.T) {
	schema, err := NewFeatureSchema([]string{"area", "beds"})
	require.NoError(t, err)

	assert.Empty(t, ExtractDomain(schema, CityPrefix))
	assert.Empty(t, schema.Cities())
}
