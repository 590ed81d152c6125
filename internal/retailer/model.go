package retailer

// Product is one search hit from a retailer catalog.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Retailer  string  `json:"retailer"`
}

// CartItem is one line to push into a retailer cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
