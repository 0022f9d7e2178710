package services

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/minhtran-dev/canteen-client/config"
	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestClient wires a client against a fake canteen API built with gin.
func newTestClient(t *testing.T, router *gin.Engine) *Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:  server.URL,
		HTTPTimeout: 5 * time.Second,
	}
	return NewClient(cfg, StaticTokenSource("test-token"))
}

// pendingReservation builds the local intent a session would commit.
func pendingReservation(t *testing.T, tableID uint, slot models.TimeSlot, date string, party int) *models.Reservation {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot.Start, time.Local)
	require.NoError(t, err)
	end, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot.End, time.Local)
	require.NoError(t, err)
	return &models.Reservation{
		TableID:   tableID,
		StartTime: models.NewAPITime(start),
		EndTime:   models.NewAPITime(end),
		PartySize: party,
		Status:    models.ReservationPending,
		IsOwned:   true,
	}
}
