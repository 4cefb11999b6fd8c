package domain

// Scalar feature columns, matched by name against the schema.
const (
	ColumnArea       = "area"
	ColumnBeds       = "beds"
	ColumnBathrooms  = "bathrooms"
	ColumnBalconies  = "balconies"
	ColumnFurnishing = "furnishing"
	ColumnAreaRate   = "area_rate"
)

// Furnishing is ordinal-encoded: the model was trained on 0, 1, 2, not on
// indicator columns.
type Furnishing int

const (
	Unfurnished Furnishing = iota
	SemiFurnished
	Furnished
)

var furnishingLabels = [...]string{
	Unfurnished:   "Unfurnished",
	SemiFurnished: "Semi-Furnished",
	Furnished:     "Furnished",
}

// ParseFurnishing maps a form label to its ordinal. Only the three known
// labels are accepted.
func ParseFurnishing(label string) (Furnishing, error) {
	for i, l := range furnishingLabels {
		if l == label {
			return Furnishing(i), nil
		}
	}
	return 0, ErrUnknownFurnishing
}

func (f Furnishing) String() string {
	if f < Unfurnished || f > Furnished {
		return "Furnishing(?)"
	}
	return furnishingLabels[f]
}

func (f Furnishing) Ordinal() float64 {
	return float64(f)
}

// FurnishingLabels returns the labels in ordinal order.
func FurnishingLabels() []string {
	return append([]string(nil), furnishingLabels[:]...)
}

// RawFields are the property attributes captured from the form.
type RawFields struct {
	Area       float64
	Beds       int
	Bathrooms  int
	Balconies  int
	Furnishing Furnishing
	AreaRate   float64
	City       string
	Locality   string
}

// ============================================================================
// Form Domains
// ============================================================================

// Range is an inclusive numeric input range with a form default.
type Range struct {
	Min     float64
	Max     float64
	Default float64
}

var (
	AreaRange     = Range{Min: 100, Max: 10000, Default: 900}
	AreaRateRange = Range{Min: 1, Max: 500, Default: 50}

	BedroomChoices  = []int{1, 2, 3, 4, 5}
	BathroomChoices = []int{1, 2, 3, 4}
	BalconyChoices  = []int{0, 1, 2, 3}
)
