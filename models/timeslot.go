package models

// TimeSlot is one fixed scheduling window within the operating day.
// Start and End are local wall-clock strings ("HH:MM"); combined with a
// date they yield the reservation window in the client's timezone.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotState string

const (
	SlotFree   SlotState = "free"
	SlotBooked SlotState = "booked"
	SlotMine   SlotState = "mine"
)

// SlotStatus classifies one slot against the reservations of a single
// table. Reservation is the first conflict found, nil for a free slot.
type SlotStatus struct {
	Slot        TimeSlot     `json:"slot"`
	Status      SlotState    `json:"status"`
	Reservation *Reservation `json:"reservation,omitempty"`
}
