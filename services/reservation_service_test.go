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

func TestListForTable(t *testing.T) {
	router := gin.New()
	router.GET("/reservations/availability/5", func(c *gin.Context) {
		assert.Equal(t, "2024-06-10", c.Query("date"))
		// availability summaries carry no ids, naive local timestamps
		c.JSON(http.StatusOK, []gin.H{
			{"start_time": "2024-06-10T09:00:00", "end_time": "2024-06-10T11:00:00", "status": "confirmed", "is_owned": false},
			{"start_time": "2024-06-10T14:00:00", "end_time": "2024-06-10T15:00:00", "status": "confirmed", "is_owned": true},
		})
	})

	svc := NewReservationService(newTestClient(t, router))
	reservations, err := svc.ListForTable(context.Background(), 5, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.True(t, reservations[0].Pending())
	assert.False(t, reservations[0].IsOwned)
	assert.True(t, reservations[1].IsOwned)
	assert.Equal(t, 9, reservations[0].StartTime.Hour())
}

func TestListForTableFetchError(t *testing.T) {
	router := gin.New()
	router.GET("/reservations/availability/5", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Table not found"})
	})

	svc := NewReservationService(newTestClient(t, router))
	_, err := svc.ListForTable(context.Background(), 5, "2024-06-10")

	var fetchErr *models.AvailabilityFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Table not found", fetchErr.Detail)
}

func TestCreateReservation(t *testing.T) {
	router := gin.New()
	router.POST("/reservations/", func(c *gin.Context) {
		var body struct {
			TableID   uint   `json:"table_id"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
			PartySize int    `json:"party_size"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		assert.Equal(t, uint(5), body.TableID)
		assert.Equal(t, "2024-06-10T12:00:00", body.StartTime)
		assert.Equal(t, "2024-06-10T13:00:00", body.EndTime)
		assert.Equal(t, 4, body.PartySize)

		c.JSON(http.StatusCreated, gin.H{
			"id":         42,
			"table_id":   body.TableID,
			"start_time": body.StartTime,
			"end_time":   body.EndTime,
			"party_size": body.PartySize,
			"status":     "confirmed",
		})
	})

	svc := NewReservationService(newTestClient(t, router))

	slot := models.TimeSlot{ID: "12:00-13:00", Start: "12:00", End: "13:00"}
	pending := pendingReservation(t, 5, slot, "2024-06-10", 4)
	created, err := svc.Create(context.Background(), pending)
	require.NoError(t, err)

	require.NotNil(t, created.ID)
	assert.Equal(t, uint(42), *created.ID)
	assert.False(t, created.Pending())
	assert.Equal(t, models.ReservationConfirmed, created.Status)
}

func TestCreateReservationConflict(t *testing.T) {
	router := gin.New()
	router.POST("/reservations/", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"detail": "Time slot already reserved"})
	})

	svc := NewReservationService(newTestClient(t, router))

	slot := models.TimeSlot{ID: "12:00-13:00", Start: "12:00", End: "13:00"}
	_, err := svc.Create(context.Background(), pendingReservation(t, 5, slot, "2024-06-10", 4))

	var conflict *models.ReservationConflictError
	require.ErrorAs(t, err, &conflict)
	// the server's message reaches the user verbatim
	assert.Equal(t, "Time slot already reserved", conflict.Error())
}

func TestDeleteReservation(t *testing.T) {
	router := gin.New()
	deleted := false
	router.DELETE("/reservations/42", func(c *gin.Context) {
		deleted = true
		c.JSON(http.StatusOK, gin.H{"id": 42, "status": "cancelled"})
	})

	svc := NewReservationService(newTestClient(t, router))
	require.NoError(t, svc.Delete(context.Background(), 42))
	assert.True(t, deleted)
}
