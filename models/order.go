package models

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ID        uint    `json:"id,omitempty"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal,omitempty"`
}

type Order struct {
	ID            uint        `json:"id"`
	TableID       uint        `json:"table_id"`
	ReservationID *uint       `json:"reservation_id,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     APITime     `json:"created_at,omitempty"`
}

// OrderCreate is the payload for placing an order from the current cart
// contents against the committed table and reservation.
type OrderCreate struct {
	TableID       uint        `json:"table_id"`
	ReservationID *uint       `json:"reservation_id,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Items         []OrderItem `json:"items"`
}
