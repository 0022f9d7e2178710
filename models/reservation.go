package models

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation mirrors a table reservation. A nil ID marks a local-only
// intent that has not been accepted by the server yet; it becomes
// authoritative only once the create call returns a server-assigned id.
type Reservation struct {
	ID        *uint             `json:"id,omitempty"`
	TableID   uint              `json:"table_id"`
	StartTime APITime           `json:"start_time"`
	EndTime   APITime           `json:"end_time"`
	PartySize int               `json:"party_size"`
	Notes     string            `json:"notes,omitempty"`
	Status    ReservationStatus `json:"status,omitempty"`
	IsOwned   bool              `json:"is_owned,omitempty"`
}

// Pending reports whether the reservation is still a local intent.
func (r *Reservation) Pending() bool {
	return r.ID == nil
}

// Blocking reports whether the reservation still occupies its window.
// Cancelled and completed reservations no longer block a slot.
func (r *Reservation) Blocking() bool {
	return r.Status != ReservationCancelled && r.Status != ReservationCompleted
}
