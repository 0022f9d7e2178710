package services

import (
	"context"
	"fmt"

	"github.com/minhtran-dev/canteen-client/models"
)

// CartService talks to the server-side cart. The cart itself is server
// truth; the client only mirrors it for display and checkout.
type CartService struct {
	client *Client
}

func NewCartService(client *Client) *CartService {
	return &CartService{client: client}
}

// Get retrieves the current user's cart.
func (s *CartService) Get(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := s.client.do(ctx, "GET", "/carts/my-cart", nil, nil, &cart); err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return &cart, nil
}

// AddItem puts quantity of a product into the cart.
func (s *CartService) AddItem(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	var cart models.Cart
	if err := s.client.do(ctx, "POST", "/carts/items", nil, body, &cart); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &cart, nil
}

// UpdateItem changes the quantity of a cart item.
func (s *CartService) UpdateItem(ctx context.Context, itemID uint, quantity int) (*models.Cart, error) {
	body := map[string]interface{}{"quantity": quantity}
	var cart models.Cart
	if err := s.client.do(ctx, "PUT", fmt.Sprintf("/carts/items/%d", itemID), nil, body, &cart); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return &cart, nil
}

// RemoveItem deletes one item from the cart.
func (s *CartService) RemoveItem(ctx context.Context, itemID uint) error {
	if err := s.client.do(ctx, "DELETE", fmt.Sprintf("/carts/items/%d", itemID), nil, nil, nil); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.client.do(ctx, "DELETE", "/carts/clear", nil, nil, nil); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
