package types

import "time"

// CartItem is one product's quantity in the shopping cart.
type CartItem struct {
	ProductID ProductID `json:"product_id" yaml:"product_id"`
	Quantity  int       `json:"quantity" yaml:"quantity"`
	AddedAt   time.Time `json:"added_at" yaml:"added_at"`
}

// CartLine joins a cart item with its cached product.
type CartLine struct {
	Product Product  `json:"product" yaml:"product"`
	Item    CartItem `json:"item" yaml:"item"`
}

// Subtotal is the line price in US dollars.
func (l CartLine) Subtotal() float64 { return l.Product.Price * float64(l.Item.Quantity) }

// CartSummary is the cart as presented to the user.
type CartSummary struct {
	Lines         []CartLine `json:"lines" yaml:"lines"`
	TotalQuantity int        `json:"total_quantity" yaml:"total_quantity"`
	TotalPrice    float64    `json:"total_price" yaml:"total_price"`
}
