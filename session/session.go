// Package session owns the in-progress table and time-slot selection for
// one browsing session: the date and party size being edited, the confirmed
// window, the chosen table and the committed reservation. It is an explicit
// object handed to the screens that need it, with a durable snapshot behind
// it so a restart does not lose a commitment.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/schedule"
	"github.com/minhtran-dev/canteen-client/services"
	"github.com/minhtran-dev/canteen-client/stores"
	"github.com/minhtran-dev/canteen-client/utils"
)

// Step names the phase of the selection workflow.
type Step string

const (
	StepNoWindow        Step = "no_window_chosen"
	StepWindowConfirmed Step = "window_confirmed"
	StepTableChosen     Step = "table_chosen"
	StepCommitted       Step = "reservation_committed"
)

// TableAPI is the slice of the table service the session needs.
type TableAPI interface {
	List(ctx context.Context, filter *services.TableFilter) ([]models.Table, error)
}

// ReservationAPI is the slice of the reservation service the session needs.
type ReservationAPI interface {
	ListForTable(ctx context.Context, tableID uint, date string) ([]models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

// State is the selection state proper. ConfirmedSlot and
// SelectedReservation are copies; mutating them does not touch the session.
type State struct {
	ReservationDate     string
	PartySize           int
	PendingSlotID       string
	ConfirmedSlot       *models.TimeSlot
	SelectedTableID     uint
	SelectedReservation *models.Reservation
}

const (
	fetchTables = "tables"
	fetchSlots  = "slots"
)

// Session is the selection state machine. Its methods are safe to call from
// UI event handlers and network callbacks; responses of superseded fetches
// are discarded instead of overwriting newer state.
type Session struct {
	mu           sync.Mutex
	tables       TableAPI
	reservations ReservationAPI
	store        *stores.SnapshotStore
	loc          *time.Location

	state         State
	selectedTable *models.Table
	tableList     []models.Table
	slotBoard     []models.SlotStatus
	fetchErr      error

	fetchSeq map[string]uint64
}

// New builds a session with today's date and the given default party size,
// restoring a previously committed table and reservation from the store.
func New(tables TableAPI, reservations ReservationAPI, store *stores.SnapshotStore, partySize int) *Session {
	if partySize < 1 {
		partySize = 1
	}
	s := &Session{
		tables:       tables,
		reservations: reservations,
		store:        store,
		loc:          time.Local,
		state: State{
			ReservationDate: time.Now().Format("2006-01-02"),
			PartySize:       partySize,
		},
		fetchSeq: make(map[string]uint64),
	}
	s.restore()
	return s
}

func (s *Session) restore() {
	var table models.Table
	if ok, err := s.store.LoadJSON(stores.KeySelectedTable, &table); err == nil && ok {
		s.selectedTable = &table
		s.state.SelectedTableID = table.ID
	}
	var reservation models.Reservation
	if ok, err := s.store.LoadJSON(stores.KeySelectedReservation, &reservation); err == nil && ok {
		s.state.SelectedReservation = &reservation
	}
}

// Step derives the current phase from the state.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.state.SelectedReservation != nil:
		return StepCommitted
	case s.state.SelectedTableID != 0:
		return StepTableChosen
	case s.state.ConfirmedSlot != nil:
		return StepWindowConfirmed
	default:
		return StepNoWindow
	}
}

// SetDate changes the reservation date. Any previously chosen window, table
// and reservation become meaningless for the new date and are cleared, and
// the table list is re-fetched unscoped.
func (s *Session) SetDate(ctx context.Context, date string) error {
	if _, err := time.ParseInLocation("2006-01-02", date, s.loc); err != nil {
		return &models.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date), Err: err}
	}

	s.mu.Lock()
	s.state.ReservationDate = date
	s.state.PendingSlotID = ""
	s.state.ConfirmedSlot = nil
	s.state.SelectedTableID = 0
	s.selectedTable = nil
	s.state.SelectedReservation = nil
	s.slotBoard = nil
	s.mu.Unlock()

	s.dropMirror()

	_, err := s.RefreshTables(ctx)
	return err
}

// SetPartySize updates the party size for the next commitment.
func (s *Session) SetPartySize(n int) error {
	if n < 1 {
		return &models.ValidationError{Message: "party size must be at least 1"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PartySize = n
	return nil
}

// SelectSlot marks a slot as the candidate window. Nothing is confirmed and
// no fetch happens until ConfirmSlot.
func (s *Session) SelectSlot(slotID string) error {
	if _, ok := schedule.SlotByID(slotID); !ok {
		return &models.ValidationError{Message: fmt.Sprintf("unknown time slot %q", slotID)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PendingSlotID = slotID
	return nil
}

// ConfirmSlot locks in the pending slot as the browsing window, drops any
// previously chosen table or reservation and re-fetches the table list
// scoped to {date, slot}.
func (s *Session) ConfirmSlot(ctx context.Context) error {
	s.mu.Lock()
	if s.state.PendingSlotID == "" {
		s.mu.Unlock()
		return &models.ValidationError{Message: "choose a time slot first", Err: models.ErrNoSlotSelected}
	}
	slot, ok := schedule.SlotByID(s.state.PendingSlotID)
	if !ok {
		s.mu.Unlock()
		return &models.ValidationError{Message: fmt.Sprintf("unknown time slot %q", s.state.PendingSlotID)}
	}
	s.state.ConfirmedSlot = &slot
	s.state.SelectedTableID = 0
	s.selectedTable = nil
	s.state.SelectedReservation = nil
	s.mu.Unlock()

	s.dropMirror()

	_, err := s.RefreshTables(ctx)
	return err
}

// RefreshTables fetches the table list. With a confirmed window the fetch
// is scoped to it and the returned statuses describe that window; without
// one the list carries the server's current global status and is browse
// only (SelectTable requires a confirmed window). On failure the list is
// emptied rather than left stale and the error is kept for display.
//
// Only the most recent fetch may update state: a response belonging to a
// superseded fetch is discarded.
func (s *Session) RefreshTables(ctx context.Context) ([]models.Table, error) {
	s.mu.Lock()
	var filter *services.TableFilter
	if s.state.ConfirmedSlot != nil {
		filter = &services.TableFilter{
			Date:      s.state.ReservationDate,
			StartTime: s.state.ConfirmedSlot.Start,
			EndTime:   s.state.ConfirmedSlot.End,
		}
	}
	s.fetchSeq[fetchTables]++
	token := s.fetchSeq[fetchTables]
	s.mu.Unlock()

	tables, err := s.tables.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.fetchSeq[fetchTables] {
		utils.InfoLogger.Printf("discarding stale table fetch (token %d)", token)
		return copyTables(s.tableList), nil
	}
	if err != nil {
		s.tableList = nil
		s.fetchErr = err
		return nil, err
	}
	s.tableList = tables
	s.fetchErr = nil
	return copyTables(tables), nil
}

// LoadSlotStatuses fetches the reservations of one table for the current
// date and classifies every slot of the day against them. The result is
// advisory; the server re-validates on create.
func (s *Session) LoadSlotStatuses(ctx context.Context, tableID uint) ([]models.SlotStatus, error) {
	s.mu.Lock()
	date := s.state.ReservationDate
	s.fetchSeq[fetchSlots]++
	token := s.fetchSeq[fetchSlots]
	s.mu.Unlock()

	reservations, err := s.reservations.ListForTable(ctx, tableID, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.fetchSeq[fetchSlots] {
		utils.InfoLogger.Printf("discarding stale slot fetch (token %d)", token)
		return copySlotBoard(s.slotBoard), nil
	}
	if err != nil {
		s.slotBoard = nil
		s.fetchErr = err
		return nil, err
	}
	board, err := schedule.Resolve(date, reservations, s.loc)
	if err != nil {
		return nil, err
	}
	s.slotBoard = board
	s.fetchErr = nil
	return copySlotBoard(board), nil
}

// SelectTable picks a table from the current window-scoped list. Tables
// that are occupied or reserved for the window are rejected and the state
// does not change.
func (s *Session) SelectTable(tableID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ConfirmedSlot == nil {
		return &models.ValidationError{Message: "confirm a time slot before picking a table", Err: models.ErrNoSlotSelected}
	}
	var table *models.Table
	for i := range s.tableList {
		if s.tableList[i].ID == tableID {
			table = &s.tableList[i]
			break
		}
	}
	if table == nil {
		return &models.ValidationError{Message: fmt.Sprintf("table %d is not in the current list", tableID)}
	}
	if !table.Available() {
		return &models.ValidationError{
			Message: fmt.Sprintf("table %s is %s for this window", table.TableNumber, table.Status),
			Err:     models.ErrTableUnavailable,
		}
	}

	chosen := *table
	s.state.SelectedTableID = chosen.ID
	s.selectedTable = &chosen
	if err := s.store.SaveJSON(stores.KeySelectedTable, &chosen); err != nil {
		utils.ErrorLogger.Printf("persist selected table: %v", err)
	}
	return nil
}

// PrepareReservation commits the chosen table and window as a pending
// reservation. No network call happens here; the record becomes
// authoritative only once EnsureReservation persists it.
func (s *Session) PrepareReservation() (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ConfirmedSlot == nil {
		return nil, &models.ValidationError{Message: "confirm a time slot first", Err: models.ErrNoSlotSelected}
	}
	if s.selectedTable == nil {
		return nil, &models.ValidationError{Message: "pick a table first", Err: models.ErrNoTableSelected}
	}

	reservation, err := BuildReservation(s.selectedTable.ID, *s.state.ConfirmedSlot, s.state.ReservationDate, s.state.PartySize, s.loc)
	if err != nil {
		return nil, err
	}
	s.state.SelectedReservation = reservation

	if err := s.store.SaveJSON(stores.KeySelectedTable, s.selectedTable); err != nil {
		utils.ErrorLogger.Printf("persist selected table: %v", err)
	}
	if err := s.store.SaveJSON(stores.KeySelectedReservation, reservation); err != nil {
		utils.ErrorLogger.Printf("persist reservation: %v", err)
	}

	out := *reservation
	return &out, nil
}

// EnsureReservation persists the committed reservation if it is still a
// local intent and returns the authoritative record. When the server
// reports the window is no longer free the stale commitment is dropped and
// the conflict is returned for the user to see verbatim.
func (s *Session) EnsureReservation(ctx context.Context) (*models.Reservation, error) {
	s.mu.Lock()
	r := s.state.SelectedReservation
	if r == nil {
		s.mu.Unlock()
		return nil, &models.ValidationError{Message: "hold a table and time slot before ordering", Err: models.ErrNoReservation}
	}
	if !r.Pending() {
		out := *r
		s.mu.Unlock()
		return &out, nil
	}
	payload := *r
	s.mu.Unlock()

	created, err := s.reservations.Create(ctx, &payload)
	if err != nil {
		var conflict *models.ReservationConflictError
		if errors.As(err, &conflict) {
			s.ClearReservation()
		}
		return nil, err
	}
	created.IsOwned = true

	s.mu.Lock()
	s.state.SelectedReservation = created
	s.mu.Unlock()
	if err := s.store.SaveJSON(stores.KeySelectedReservation, created); err != nil {
		utils.ErrorLogger.Printf("persist reservation: %v", err)
	}

	out := *created
	return &out, nil
}

// CancelReservation releases a held reservation: persisted holds are
// deleted server-side first, then the local commitment is dropped. With
// nothing held it is a no-op.
func (s *Session) CancelReservation(ctx context.Context) error {
	s.mu.Lock()
	r := s.state.SelectedReservation
	s.mu.Unlock()

	if r == nil {
		return nil
	}
	if !r.Pending() {
		if err := s.reservations.Delete(ctx, *r.ID); err != nil {
			return err
		}
	}
	s.ClearReservation()
	return nil
}

// ClearReservation drops the committed reservation and its durable mirror.
// The confirmed window and selected table stay; the user may recommit.
func (s *Session) ClearReservation() {
	s.mu.Lock()
	s.state.SelectedReservation = nil
	s.mu.Unlock()
	if err := s.store.Remove(stores.KeySelectedReservation); err != nil {
		utils.ErrorLogger.Printf("remove reservation snapshot: %v", err)
	}
}

// ClearSelectedTable drops the chosen table and its durable mirror.
func (s *Session) ClearSelectedTable() {
	s.mu.Lock()
	s.state.SelectedTableID = 0
	s.selectedTable = nil
	s.mu.Unlock()
	if err := s.store.Remove(stores.KeySelectedTable); err != nil {
		utils.ErrorLogger.Printf("remove table snapshot: %v", err)
	}
}

// SelectedTable returns the committed table, restoring it from the durable
// snapshot when the in-memory state is empty (fresh mount), or nil.
func (s *Session) SelectedTable() *models.Table {
	s.mu.Lock()
	if s.selectedTable != nil {
		out := *s.selectedTable
		s.mu.Unlock()
		return &out
	}
	s.mu.Unlock()

	var table models.Table
	ok, err := s.store.LoadJSON(stores.KeySelectedTable, &table)
	if err != nil || !ok {
		return nil
	}

	s.mu.Lock()
	s.selectedTable = &table
	s.state.SelectedTableID = table.ID
	s.mu.Unlock()

	out := table
	return &out
}

// SelectedReservation returns the committed reservation, restoring it from
// the durable snapshot when needed, or nil.
func (s *Session) SelectedReservation() *models.Reservation {
	s.mu.Lock()
	if s.state.SelectedReservation != nil {
		out := *s.state.SelectedReservation
		s.mu.Unlock()
		return &out
	}
	s.mu.Unlock()

	var reservation models.Reservation
	ok, err := s.store.LoadJSON(stores.KeySelectedReservation, &reservation)
	if err != nil || !ok {
		return nil
	}

	s.mu.Lock()
	s.state.SelectedReservation = &reservation
	s.mu.Unlock()

	out := reservation
	return &out
}

// State returns a copy of the selection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if s.state.ConfirmedSlot != nil {
		slot := *s.state.ConfirmedSlot
		out.ConfirmedSlot = &slot
	}
	if s.state.SelectedReservation != nil {
		r := *s.state.SelectedReservation
		out.SelectedReservation = &r
	}
	return out
}

// Tables returns a copy of the last fetched table list.
func (s *Session) Tables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTables(s.tableList)
}

// SlotBoard returns a copy of the last resolved slot statuses.
func (s *Session) SlotBoard() []models.SlotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlotBoard(s.slotBoard)
}

// LastFetchError returns the error of the most recent failed fetch, or nil
// after a successful one. The UI shows it; retrying is a user action.
func (s *Session) LastFetchError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchErr
}

func (s *Session) dropMirror() {
	if err := s.store.Remove(stores.KeySelectedTable); err != nil {
		utils.ErrorLogger.Printf("remove table snapshot: %v", err)
	}
	if err := s.store.Remove(stores.KeySelectedReservation); err != nil {
		utils.ErrorLogger.Printf("remove reservation snapshot: %v", err)
	}
}

// BuildReservation derives a pending reservation record from a table, a
// slot and a date. The window is interpreted in loc.
func BuildReservation(tableID uint, slot models.TimeSlot, date string, partySize int, loc *time.Location) (*models.Reservation, error) {
	start, end, err := schedule.SlotWindow(date, slot, loc)
	if err != nil {
		return nil, err
	}
	if partySize < 1 {
		partySize = 1
	}
	return &models.Reservation{
		TableID:   tableID,
		StartTime: models.NewAPITime(start),
		EndTime:   models.NewAPITime(end),
		PartySize: partySize,
		Status:    models.ReservationPending,
		IsOwned:   true,
	}, nil
}

func copyTables(in []models.Table) []models.Table {
	if in == nil {
		return nil
	}
	out := make([]models.Table, len(in))
	copy(out, in)
	return out
}

func copySlotBoard(in []models.SlotStatus) []models.SlotStatus {
	if in == nil {
		return nil
	}
	out := make([]models.SlotStatus, len(in))
	copy(out, in)
	return out
}
