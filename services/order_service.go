package services

import (
	"context"
	"fmt"

	"github.com/minhtran-dev/canteen-client/models"
)

// OrderService places and tracks orders. Price computation and stock truth
// live server-side; the client just submits the committed table, the held
// reservation and the cart contents.
type OrderService struct {
	client *Client
}

func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// Create places an order.
func (s *OrderService) Create(ctx context.Context, payload *models.OrderCreate) (*models.Order, error) {
	var order models.Order
	if err := s.client.do(ctx, "POST", "/orders/", nil, payload, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// ListMine retrieves the current user's orders.
func (s *OrderService) ListMine(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.do(ctx, "GET", "/orders/my-orders", nil, nil, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get retrieves one order by id.
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// Cancel cancels a pending order.
func (s *OrderService) Cancel(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.client.do(ctx, "POST", fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &order); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return &order, nil
}
