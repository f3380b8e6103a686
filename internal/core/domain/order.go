package domain

const (
	PaymentPaid = "Paid"
	PaymentCOD  = "COD"
)

// CartLine is a single product/quantity pair of an order.
type CartLine struct {
	ProductID string
	Quantity  int
}

// Order is consumed once to decrement stock and is not persisted.
type Order struct {
	PaymentMethod string
	Cart          []CartLine
}

// DecrementsStock reports whether the payment method settles the order.
// Any other method is accepted but leaves the catalog untouched.
func (o Order) DecrementsStock() bool {
	return o.PaymentMethod == PaymentPaid || o.PaymentMethod == PaymentCOD
}

// Receipt summarises what applying an order did to the catalog.
type Receipt struct {
	StockUpdated bool
	LinesApplied int
	LinesSkipped int
}
