package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/minhtran-dev/canteen-client/models"
)

// ReservationService talks to the reservation endpoints of the canteen API.
type ReservationService struct {
	client *Client
}

func NewReservationService(client *Client) *ReservationService {
	return &ReservationService{client: client}
}

// ListForTable retrieves every reservation touching the given calendar date
// for one table. The records carry no ids, only windows, statuses and
// whether the requesting user owns them.
func (s *ReservationService) ListForTable(ctx context.Context, tableID uint, date string) ([]models.Reservation, error) {
	query := url.Values{}
	query.Set("date", date)

	var reservations []models.Reservation
	path := fmt.Sprintf("/reservations/availability/%d", tableID)
	if err := s.client.do(ctx, "GET", path, query, nil, &reservations); err != nil {
		return nil, models.NewAvailabilityFetchError("list reservations", err)
	}
	return reservations, nil
}

// ListMine retrieves the current user's reservations.
func (s *ReservationService) ListMine(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.client.do(ctx, "GET", "/reservations/", nil, nil, &reservations); err != nil {
		return nil, models.NewAvailabilityFetchError("list own reservations", err)
	}
	return reservations, nil
}

// Create persists a pending reservation. The server re-validates the window;
// a 409 means it is no longer free and surfaces as a
// *models.ReservationConflictError with the server's message verbatim.
func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	var created models.Reservation
	if err := s.client.do(ctx, "POST", "/reservations/", nil, r, &created); err != nil {
		var apiErr *models.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, &models.ReservationConflictError{Detail: apiErr.Detail}
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return &created, nil
}

// Delete cancels a held reservation by id.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/reservations/%d", id)
	if err := s.client.do(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return nil
}
