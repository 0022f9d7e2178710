package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCart(t *testing.T) {
	router := gin.New()
	router.GET("/carts/my-cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id": 3,
			"items": []gin.H{
				{"id": 10, "product_id": 1, "quantity": 2, "price_at_time": 25000.0, "product": gin.H{"id": 1, "name": "Pho bo", "price": 27000.0}},
				{"id": 11, "product_id": 3, "quantity": 1, "price_at_time": 0.0, "product": gin.H{"id": 3, "name": "Com ga", "price": 45000.0}},
			},
		})
	})

	svc := NewCartService(newTestClient(t, router))
	cart, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	// captured price wins; product price fills the gap when it is missing
	assert.Equal(t, 95000.0, cart.Total())

	items := cart.OrderItems()
	require.Len(t, items, 2)
	assert.Equal(t, 25000.0, items[0].Price)
	assert.Equal(t, 45000.0, items[1].Price)
}

func TestAddAndClearCart(t *testing.T) {
	router := gin.New()
	router.POST("/carts/items", func(c *gin.Context) {
		var body struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, gin.H{
			"id":    3,
			"items": []gin.H{{"id": 10, "product_id": body.ProductID, "quantity": body.Quantity, "price_at_time": 25000.0}},
		})
	})
	cleared := false
	router.DELETE("/carts/clear", func(c *gin.Context) {
		cleared = true
		c.Status(http.StatusNoContent)
	})

	svc := NewCartService(newTestClient(t, router))

	cart, err := svc.AddItem(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	require.NoError(t, svc.Clear(context.Background()))
	assert.True(t, cleared)
}
