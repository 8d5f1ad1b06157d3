package checkout

// DefaultTaxRate is the VAT rate applied when none is configured.
const DefaultTaxRate = 0.24

// Summary holds the derived checkout totals. Values are unrounded; use a
// Formatter to render them.
type Summary struct {
	Subtotal   float64
	Tax        float64
	GrandTotal float64
}

// Totals computes tax and grand total from a subtotal. A non-positive rate
// falls back to DefaultTaxRate.
func Totals(subtotal, taxRate float64) Summary {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}

	tax := subtotal * taxRate
	return Summary{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}
