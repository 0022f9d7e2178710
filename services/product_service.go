package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/minhtran-dev/canteen-client/models"
)

// ProductFilter narrows a menu listing. The zero value lists every product
// the server currently marks available.
type ProductFilter struct {
	CategoryID         uint
	Search             string
	IncludeUnavailable bool
}

// ProductService talks to the menu endpoints of the canteen API. Browsing is
// how the user discovers the product ids the cart and order calls need.
type ProductService struct {
	client *Client
}

func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

// List retrieves menu items. A search keyword goes through the dedicated
// search endpoint; otherwise the listing is optionally scoped to a category.
func (s *ProductService) List(ctx context.Context, filter *ProductFilter) ([]models.Product, error) {
	path := "/products/"
	query := url.Values{}
	if filter != nil {
		if filter.Search != "" {
			path = "/products/search"
			query.Set("q", filter.Search)
		} else {
			if filter.CategoryID != 0 {
				query.Set("category_id", strconv.FormatUint(uint64(filter.CategoryID), 10))
			}
			if filter.IncludeUnavailable {
				query.Set("available_only", "false")
			}
		}
	}

	var products []models.Product
	if err := s.client.do(ctx, "GET", path, query, nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get retrieves a single menu item by id.
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// Categories retrieves the menu categories.
func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.client.do(ctx, "GET", "/categories/", nil, nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
