package models

// CartLine is one product/quantity pairing in a session cart. Name and Price
// are snapshots taken when the product was first added; later catalog edits
// or deletes do not touch existing lines.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the session-scoped shopping cart. It lives only inside the cookie
// session store and is never persisted. The zero value is a valid empty cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add puts qty units of product into the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new snapshot line
// is appended. Callers resolve the product against the catalog first, so a
// missing product never reaches this point.
func (cart *Cart) Add(product Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == product.ID {
			cart.Lines[i].Quantity += qty
			return
		}
	}
	cart.Lines = append(cart.Lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  qty,
	})
}

// Total returns the grand total, recomputed from the lines on every call.
func (cart *Cart) Total() float64 {
	var total float64
	for _, line := range cart.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Clear empties the cart. Checkout confirmation is the only caller.
func (cart *Cart) Clear() {
	cart.Lines = nil
}

// IsEmpty reports whether the cart holds no lines.
func (cart *Cart) IsEmpty() bool {
	return len(cart.Lines) == 0
}
