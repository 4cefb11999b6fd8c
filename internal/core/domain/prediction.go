package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrencySymbol = "₹"

// Prediction is one served rental estimate.
type Prediction struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	ModelVersion string
	Fields       RawFields
	Price        float64
	Display      string
	Cached       bool
	Row          *InputRow
}

// FormatMonthlyRent renders a price rounded to whole units with thousands
// separators, e.g. "₹ 25,000 / month".
func FormatMonthlyRent(price float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s %.0f / month", symbol, price)
}
