package recipes

// ShoppingCartItem is one aggregated ingredient line across every
// recipe in the cart.
type ShoppingCartItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int64  `json:"total"`
}
