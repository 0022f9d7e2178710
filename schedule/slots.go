// Package schedule derives the fixed reservation slot grid for one
// operating day and classifies slots against existing reservations.
// Everything here is pure; the server stays the authority on conflicts.
package schedule

import (
	"fmt"
	"time"

	"github.com/minhtran-dev/canteen-client/models"
)

// Operating day bounds. The canteen takes reservations on the hour between
// opening and closing.
const (
	openingHour = 7
	closingHour = 21
	slotMinutes = 60

	slotsPerDay = (closingHour - openingHour) * 60 / slotMinutes
)

const dateLayout = "2006-01-02"

var daySlots = buildSlots()

func buildSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, slotsPerDay)
	for minute := openingHour * 60; minute < closingHour*60; minute += slotMinutes {
		start := formatTimeOfDay(minute)
		end := formatTimeOfDay(minute + slotMinutes)
		slots = append(slots, models.TimeSlot{
			ID:    start + "-" + end,
			Label: start + " - " + end,
			Start: start,
			End:   end,
		})
	}
	return slots
}

// Slots returns the ordered slot sequence for a single operating day.
func Slots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(daySlots))
	copy(out, daySlots)
	return out
}

// SlotByID looks a slot up by its "<start>-<end>" id.
func SlotByID(id string) (models.TimeSlot, bool) {
	for _, slot := range daySlots {
		if slot.ID == id {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

// SlotWindow combines a calendar date with a slot into the two instants of
// its reservation window, interpreted in loc.
func SlotWindow(date string, slot models.TimeSlot, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	startMin, err := parseTimeOfDay(slot.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := parseTimeOfDay(slot.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day.Add(time.Duration(startMin) * time.Minute)
	end := day.Add(time.Duration(endMin) * time.Minute)
	return start, end, nil
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
