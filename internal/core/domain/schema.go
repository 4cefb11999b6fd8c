package domain

import (
	"sort"
	"strings"
)

const (
	CityPrefix     = "city_"
	LocalityPrefix = "locality_"

	categorySeparator = "_"
)

// FeatureSchema is the ordered column list a trained model expects.
// It is immutable once built.
type FeatureSchema struct {
	names   []string
	index   map[string]int
	domains map[string][]string
}

// NewFeatureSchema validates names and precomputes the lookup tables used
// per request. Empty schemas and duplicate names are rejected.
func NewFeatureSchema(names []string) (*FeatureSchema, error) {
	if len(names) == 0 {
		return nil, &SchemaError{Reason: "no columns"}
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, &SchemaError{Reason: "empty column name"}
		}
		if _, dup := index[name]; dup {
			return nil, &SchemaError{Reason: "duplicate column", Column: name}
		}
		index[name] = i
	}

	s := &FeatureSchema{
		names: append([]string(nil), names...),
		index: index,
	}
	s.domains = map[string][]string{
		CityPrefix:     sortedDomain(s, CityPrefix),
		LocalityPrefix: sortedDomain(s, LocalityPrefix),
	}
	return s, nil
}

// Names returns a copy of the column names in model order.
func (s *FeatureSchema) Names() []string {
	return append([]string(nil), s.names...)
}

// Len is the number of columns.
func (s *FeatureSchema) Len() int {
	return len(s.names)
}

// Index returns the position of name, or -1.
func (s *FeatureSchema) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Has reports whether name is one of the schema's columns.
func (s *FeatureSchema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Cities returns the sorted city domain.
func (s *FeatureSchema) Cities() []string {
	return append([]string(nil), s.domains[CityPrefix]...)
}

// Localities returns the sorted locality domain.
func (s *FeatureSchema) Localities() []string {
	return append([]string(nil), s.domains[LocalityPrefix]...)
}

// ExtractDomain collects the category values encoded in columns that start
// with prefix. The value is the token between the prefix and the next
// separator, so "locality_Baner_Road" yields "Baner" and "city__Pune"
// yields nothing. A prefix given without its trailing separator ("city")
// consumes exactly one.
func ExtractDomain(schema *FeatureSchema, prefix string) map[string]struct{} {
	if !strings.HasSuffix(prefix, categorySeparator) {
		prefix += categorySeparator
	}

	values := make(map[string]struct{})
	for _, name := range schema.names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		value, _, _ := strings.Cut(strings.TrimPrefix(name, prefix), categorySeparator)
		if value == "" {
			continue
		}
		values[value] = struct{}{}
	}
	return values
}

func sortedDomain(schema *FeatureSchema, prefix string) []string {
	set := ExtractDomain(schema, prefix)
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
