package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

// Table is the canonical table record. The server has been observed sending
// the number under both "number" and "table_number" and the area under both
// "location" and "area", so decoding normalizes everything here; the rest of
// the client only ever sees this one shape.
type Table struct {
	ID          uint        `json:"id"`
	TableNumber string      `json:"number"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `json:"status"`
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          uint        `json:"id"`
		Number      flexString  `json:"number"`
		TableNumber flexString  `json:"table_number"`
		Location    string      `json:"location"`
		Area        string      `json:"area"`
		Capacity    int         `json:"capacity"`
		Seats       int         `json:"seats"`
		Status      TableStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.ID = raw.ID
	t.TableNumber = string(raw.Number)
	if t.TableNumber == "" {
		t.TableNumber = string(raw.TableNumber)
	}
	t.Location = raw.Location
	if t.Location == "" {
		t.Location = raw.Area
	}
	t.Capacity = raw.Capacity
	if t.Capacity == 0 {
		t.Capacity = raw.Seats
	}
	t.Status = raw.Status
	return nil
}

// Available reports whether the table can be selected for a new reservation.
func (t *Table) Available() bool {
	return t.Status == TableAvailable
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) Int() int {
	v, _ := strconv.Atoi(string(f))
	return v
}
