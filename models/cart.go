package models

type CartItem struct {
	ID          uint     `json:"id"`
	ProductID   uint     `json:"product_id"`
	Quantity    int      `json:"quantity"`
	PriceAtTime float64  `json:"price_at_time"`
	Product     *Product `json:"product,omitempty"`
}

type Cart struct {
	ID    uint       `json:"id"`
	Items []CartItem `json:"items"`
}

// Total sums the cart at the prices captured when items were added. The
// server recomputes the authoritative total at checkout.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		price := item.PriceAtTime
		if price == 0 && item.Product != nil {
			price = item.Product.Price
		}
		total += price * float64(item.Quantity)
	}
	return total
}

// OrderItems converts the cart contents into an order payload.
func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		price := item.PriceAtTime
		if price == 0 && item.Product != nil {
			price = item.Product.Price
		}
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	return items
}
