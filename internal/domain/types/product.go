package types

// Rating is the aggregate customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate" yaml:"rate"`
	Count int     `json:"count" yaml:"count"`
}

// Product is a catalog entry. Price is in US dollars.
type Product struct {
	ID          ProductID `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Price       float64   `json:"price" yaml:"price"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	Image       string    `json:"image" yaml:"image"`
	Rating      Rating    `json:"rating" yaml:"rating"`
}
