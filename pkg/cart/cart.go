package cart

// Item is one cart line, identified by product ID.
type Item struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the line's price contribution to the subtotal.
func (i Item) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Product is the subset of catalog data a cart line needs.
type Product struct {
	ID    int64
	Name  string
	Price float64
	Image string
}

// Snapshot is a point-in-time view of the cart with derived totals.
type Snapshot struct {
	Items      []Item
	TotalItems int
	Subtotal   float64
}

// IsEmpty reports whether the cart holds no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
