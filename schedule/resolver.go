package schedule

import (
	"sort"
	"time"

	"github.com/minhtran-dev/canteen-client/models"
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least
// one instant. Half-open semantics: touching endpoints do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Resolve classifies every slot of the fixed grid against the reservations
// of one table on the given date. A slot conflicting with a reservation
// owned by the requesting user is "mine"; any other conflict is "booked".
// The annotated reservation is the first conflict in start-time order,
// except that an owned conflict always wins the annotation.
func Resolve(date string, reservations []models.Reservation, loc *time.Location) ([]models.SlotStatus, error) {
	sorted := make([]models.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime.Time)
	})

	statuses := make([]models.SlotStatus, 0, slotsPerDay)
	for _, slot := range daySlots {
		slotStart, slotEnd, err := SlotWindow(date, slot, loc)
		if err != nil {
			return nil, err
		}

		status := models.SlotStatus{Slot: slot, Status: models.SlotFree}
		for i := range sorted {
			r := &sorted[i]
			if !r.Blocking() {
				continue
			}
			if !Overlaps(slotStart, slotEnd, r.StartTime.Time, r.EndTime.Time) {
				continue
			}
			if r.IsOwned {
				status.Status = models.SlotMine
				status.Reservation = r
				break
			}
			if status.Status == models.SlotFree {
				status.Status = models.SlotBooked
				status.Reservation = r
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
