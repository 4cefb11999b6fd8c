package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// InputRow is one row of model input aligned to a FeatureSchema. Its column
// set and order always equal the schema's.
type InputRow struct {
	schema *FeatureSchema
	values []float64
}

// BuildInputRow shapes raw form fields into a model input row. Scalar
// fields are copied by column name and furnishing is written as its ordinal.
// City and locality set their indicator column when it exists in the
// schema; an unknown category leaves its whole group at zero.
func BuildInputRow(schema *FeatureSchema, fields RawFields) InputRow {
	row := InputRow{
		schema: schema,
		values: make([]float64, schema.Len()),
	}

	row.set(ColumnArea, fields.Area)
	row.set(ColumnBeds, float64(fields.Beds))
	row.set(ColumnBathrooms, float64(fields.Bathrooms))
	row.set(ColumnBalconies, float64(fields.Balconies))
	row.set(ColumnFurnishing, fields.Furnishing.Ordinal())
	row.set(ColumnAreaRate, fields.AreaRate)

	row.set(CityPrefix+fields.City, 1)
	row.set(LocalityPrefix+fields.Locality, 1)

	return row
}

// set is a no-op for columns the schema does not carry.
func (r InputRow) set(name string, v float64) {
	if !r.schema.Has(name) {
		return
	}
	r.values[r.schema.Index(name)] = v
}

// Get returns the value of a column and whether the column exists.
func (r InputRow) Get(name string) (float64, bool) {
	i := r.schema.Index(name)
	if i < 0 {
		return 0, false
	}
	return r.values[i], true
}

// Names returns the row's columns in order.
func (r InputRow) Names() []string {
	return r.schema.Names()
}

// Values returns a copy of the positional values handed to a regressor.
func (r InputRow) Values() []float64 {
	return append([]float64(nil), r.values...)
}

func (r InputRow) Len() int {
	return len(r.values)
}

// Key is a stable textual form of the values, used for cache lookups.
func (r InputRow) Key() string {
	var b strings.Builder
	for i, v := range r.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// MarshalJSON encodes the row as an object whose keys follow schema order.
func (r InputRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.schema.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(r.values[i], 'g', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
