package checkout

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts for display in a given locale, always
// with two fraction digits. This is the only place values are rounded.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given locale tag.
// The storefront default is Greek ("el").
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Price formats an amount with locale separators and two fraction digits.
func (f *Formatter) Price(amount float64) string {
	return f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
