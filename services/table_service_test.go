package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtran-dev/canteen-client/models"
)

func TestListTablesUnscoped(t *testing.T) {
	router := gin.New()
	router.GET("/tables/", func(c *gin.Context) {
		assert.Equal(t, "Bearer test-token", c.GetHeader("Authorization"))
		assert.NotEmpty(t, c.GetHeader("X-Request-ID"))
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "number": "A1", "location": "hall", "capacity": 2, "status": "available"},
			{"id": 2, "table_number": "A2", "area": "hall", "seats": 4, "status": "occupied"},
		})
	})

	svc := NewTableService(newTestClient(t, router))
	tables, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// both server shapes arrive normalized
	assert.Equal(t, "A1", tables[0].TableNumber)
	assert.Equal(t, "A2", tables[1].TableNumber)
	assert.Equal(t, "hall", tables[1].Location)
	assert.Equal(t, 4, tables[1].Capacity)
}

func TestListTablesWindowScoped(t *testing.T) {
	router := gin.New()
	router.GET("/tables/", func(c *gin.Context) {
		assert.Equal(t, "2024-06-10", c.Query("date"))
		assert.Equal(t, "12:00", c.Query("start_time"))
		assert.Equal(t, "13:00", c.Query("end_time"))
		c.JSON(http.StatusOK, []gin.H{
			{"id": 5, "number": "5", "location": "window row", "capacity": 4, "status": "available"},
		})
	})

	svc := NewTableService(newTestClient(t, router))
	tables, err := svc.List(context.Background(), &TableFilter{
		Date:      "2024-06-10",
		StartTime: "12:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, uint(5), tables[0].ID)
	assert.True(t, tables[0].Available())
}

func TestListTablesServerError(t *testing.T) {
	router := gin.New()
	router.GET("/tables/", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database unavailable"})
	})

	svc := NewTableService(newTestClient(t, router))
	tables, err := svc.List(context.Background(), nil)
	assert.Nil(t, tables)

	var fetchErr *models.AvailabilityFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
	assert.Equal(t, "database unavailable", fetchErr.Detail)
}

func TestListTablesNetworkError(t *testing.T) {
	router := gin.New()
	client := newTestClient(t, router)
	// break the base URL so the transport fails
	client.baseURL = "http://127.0.0.1:1"

	svc := NewTableService(client)
	_, err := svc.List(context.Background(), nil)

	var fetchErr *models.AvailabilityFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.Status)
}

func TestUpdateTableStatus(t *testing.T) {
	router := gin.New()
	router.PUT("/tables/5", func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		assert.Equal(t, "occupied", body.Status)
		c.JSON(http.StatusOK, gin.H{"id": 5, "number": "5", "status": body.Status})
	})

	svc := NewTableService(newTestClient(t, router))
	table, err := svc.UpdateStatus(context.Background(), 5, models.TableOccupied)
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, table.Status)
}
