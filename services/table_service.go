package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/minhtran-dev/canteen-client/models"
)

// TableFilter scopes a table listing to a reservation window. When set, the
// server annotates each table's status for that specific window instead of
// its current global state.
type TableFilter struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Status    models.TableStatus
}

// TableService talks to the table endpoints of the canteen API.
type TableService struct {
	client *Client
}

func NewTableService(client *Client) *TableService {
	return &TableService{client: client}
}

// List retrieves the table list, optionally scoped by filter. Failures come
// back as *models.AvailabilityFetchError; callers fall back to an empty list.
func (s *TableService) List(ctx context.Context, filter *TableFilter) ([]models.Table, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Date != "" {
			query.Set("date", filter.Date)
		}
		if filter.StartTime != "" {
			query.Set("start_time", filter.StartTime)
		}
		if filter.EndTime != "" {
			query.Set("end_time", filter.EndTime)
		}
		if filter.Status != "" {
			query.Set("status_filter", string(filter.Status))
		}
	}

	var tables []models.Table
	if err := s.client.do(ctx, "GET", "/tables/", query, nil, &tables); err != nil {
		return nil, models.NewAvailabilityFetchError("list tables", err)
	}
	return tables, nil
}

// ListAvailable retrieves only the tables currently marked available.
func (s *TableService) ListAvailable(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := s.client.do(ctx, "GET", "/tables/available", nil, nil, &tables); err != nil {
		return nil, models.NewAvailabilityFetchError("list available tables", err)
	}
	return tables, nil
}

// Get retrieves a single table by id.
func (s *TableService) Get(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/tables/%d", id), nil, nil, &table); err != nil {
		return nil, models.NewAvailabilityFetchError("get table", err)
	}
	return &table, nil
}

// UpdateStatus changes a table's status server-side.
func (s *TableService) UpdateStatus(ctx context.Context, id uint, status models.TableStatus) (*models.Table, error) {
	body := map[string]string{"status": string(status)}
	var table models.Table
	if err := s.client.do(ctx, "PUT", fmt.Sprintf("/tables/%d", id), nil, body, &table); err != nil {
		return nil, fmt.Errorf("update table status: %w", err)
	}
	return &table, nil
}
