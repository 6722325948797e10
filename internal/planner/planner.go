package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ibamconsole/internal/domain"
)

// State is the lifecycle state of the draft program held by a Planner.
type State int

const (
	// StateEmptyDraft: no title, no identifier; nothing captured yet.
	StateEmptyDraft State = iota
	// StateInfoSet: title/department/date range captured, not yet persisted.
	StateInfoSet
	// StatePersisted: the program has a server identifier; sessions allowed.
	StatePersisted
	// StateDeleted: the program was removed server-side; terminal.
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateEmptyDraft:
		return "empty draft"
	case StateInfoSet:
		return "info set"
	case StatePersisted:
		return "persisted"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Planner owns the draft schedule being edited: one program plus its session
// set. It is the only writer of that state. Every mutation first completes
// its collaborator call; a failed call leaves local state exactly as it was,
// so the draft never diverges from the server by a half-applied change.
//
// Planner is not safe for concurrent use; the console is event-driven and
// runs one user action to completion at a time.
type Planner struct {
	api            domain.ScheduleAPI
	contextTimeout time.Duration

	state    State
	program  *domain.Program
	sessions []*domain.Session
	cells    cellIndex
}

// New returns a Planner holding a fresh empty draft.
func New(api domain.ScheduleAPI, timeout time.Duration) *Planner {
	return &Planner{
		api:            api,
		contextTimeout: timeout,
		state:          StateEmptyDraft,
		program:        &domain.Program{},
		cells:          make(cellIndex),
	}
}

// State returns the current lifecycle state.
func (p *Planner) State() State { return p.state }

// Program returns a copy of the draft program.
func (p *Planner) Program() domain.Program { return *p.program }

// Sessions returns the sessions of the draft in insertion order.
func (p *Planner) Sessions() []*domain.Session {
	out := make([]*domain.Session, len(p.sessions))
	copy(out, p.sessions)
	return out
}

// Find returns the session occupying the (day, slot) cell, or nil. Uses the
// cell index, so a full grid render costs one lookup per cell.
func (p *Planner) Find(day domain.WeekDay, slot domain.TimeSlot) *domain.Session {
	idx, ok := domain.WeekdayIndex(day)
	if !ok {
		return nil
	}
	date, err := ProjectDate(p.program.StartDate, idx)
	if err != nil {
		return nil
	}
	return p.cells.at(date, slot.Start, slot.End)
}

// Grid returns the full grid, rows in slot-catalog order and columns in week
// order. Empty cells are nil.
func (p *Planner) Grid() [][]*domain.Session {
	slots := domain.Slots()
	days := domain.WeekDays()
	grid := make([][]*domain.Session, len(slots))
	for i, slot := range slots {
		row := make([]*domain.Session, len(days))
		for j, day := range days {
			row[j] = p.Find(day, slot)
		}
		grid[i] = row
	}
	return grid
}

// SetInfo captures the program's title, department, and date range. On an
// unpersisted draft it only records them; Persist sends them later. On an
// already-persisted program it updates the server immediately and adopts the
// server's response.
func (p *Planner) SetInfo(ctx context.Context, info domain.ProgramInfo) error {
	if p.state == StateDeleted {
		return fmt.Errorf("%w: program was deleted", domain.ErrPrecondition)
	}

	if p.state == StatePersisted {
		if errs := info.Validate(); len(errs) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
		}
		ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
		defer cancel()
		updated, err := p.api.UpdateProgram(ctx, p.program.ID, info)
		if err != nil {
			return fmt.Errorf("update program: %w", err)
		}
		p.program = updated
		return nil
	}

	p.program.Title = info.Title
	p.program.DepartmentID = info.DepartmentID
	p.program.StartDate = info.StartDate
	p.program.EndDate = info.EndDate
	p.state = StateInfoSet
	return nil
}

// Persist creates the program server-side and adopts the assigned identifier.
// The captured info must be complete: a missing title or an open date range
// is rejected before any call goes out.
func (p *Planner) Persist(ctx context.Context) error {
	if p.state != StateInfoSet {
		return fmt.Errorf("%w: program info must be captured before saving (state: %s)", domain.ErrPrecondition, p.state)
	}

	info := domain.ProgramInfo{
		Title:        p.program.Title,
		DepartmentID: p.program.DepartmentID,
		StartDate:    p.program.StartDate,
		EndDate:      p.program.EndDate,
	}
	if errs := info.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}

	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()

	var (
		saved *domain.Program
		err   error
	)
	if p.program.ID == "" {
		saved, err = p.api.CreateProgram(ctx, info)
	} else {
		saved, err = p.api.UpdateProgram(ctx, p.program.ID, info)
	}
	if err != nil {
		return fmt.Errorf("save program: %w", err)
	}

	p.program = saved
	p.state = StatePersisted
	return nil
}

// AddSession places a new session on the grid cell addressed by the info's
// day and slot. The program must be persisted first; the cell must be free.
// Local state changes only after the collaborator confirms the create and
// returns the session with its identifier.
func (p *Planner) AddSession(ctx context.Context, info domain.SessionInfo) (*domain.Session, error) {
	if p.state != StatePersisted {
		return nil, fmt.Errorf("%w: save the program before adding sessions", domain.ErrPrecondition)
	}
	if errs := info.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}

	date, slot, err := p.place(info)
	if err != nil {
		return nil, err
	}
	if occ := p.cells.at(date, slot.Start, slot.End); occ != nil {
		return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrSlotOccupied, info.Day, slot.Start, slot.End)
	}

	session := &domain.Session{
		ProgramID: p.program.ID,
		CourseID:  info.CourseID,
		TeacherID: info.TeacherID,
		RoomID:    info.RoomID,
		SlotID:    slot.ID,
		Date:      date,
		StartTime: slot.Start,
		EndTime:   slot.End,
	}

	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()
	created, err := p.api.CreateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	p.sessions = append(p.sessions, created)
	p.cells.add(created)
	return created, nil
}

// EditSession replaces the fields of the session with the given identifier.
// The session form is submitted whole, so the info carries the full field
// set; moving the session onto an occupied cell is rejected.
func (p *Planner) EditSession(ctx context.Context, id string, info domain.SessionInfo) (*domain.Session, error) {
	if p.state != StatePersisted {
		return nil, fmt.Errorf("%w: save the program before editing sessions", domain.ErrPrecondition)
	}
	pos := p.indexOf(id)
	if pos < 0 {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	if errs := info.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}

	date, slot, err := p.place(info)
	if err != nil {
		return nil, err
	}
	if occ := p.cells.at(date, slot.Start, slot.End); occ != nil && occ.ID != id {
		return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrSlotOccupied, info.Day, slot.Start, slot.End)
	}

	current := p.sessions[pos]
	updated := *current
	updated.CourseID = info.CourseID
	updated.TeacherID = info.TeacherID
	updated.RoomID = info.RoomID
	updated.SlotID = slot.ID
	updated.Date = date
	updated.StartTime = slot.Start
	updated.EndTime = slot.End

	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()
	saved, err := p.api.UpdateSession(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	p.cells.remove(current)
	p.sessions[pos] = saved
	p.cells.add(saved)
	return saved, nil
}

// DeleteSession removes the session with the given identifier. The delete is
// awaited before local removal: a failed call leaves the session in place and
// still discoverable at its cell.
func (p *Planner) DeleteSession(ctx context.Context, id string) error {
	pos := p.indexOf(id)
	if pos < 0 {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}

	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()
	if err := p.api.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	p.cells.remove(p.sessions[pos])
	p.sessions = append(p.sessions[:pos], p.sessions[pos+1:]...)
	return nil
}

// Load fetches the program and its full session list and replaces local state
// wholesale, so editing always starts from what the server has. Both fetches
// must succeed before anything local changes.
func (p *Planner) Load(ctx context.Context, programID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()

	program, err := p.api.GetProgram(ctx, programID)
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	sessions, err := p.api.GetProgramSessions(ctx, programID)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	p.program = program
	p.sessions = sessions
	p.cells = indexSessions(sessions)
	p.state = StatePersisted
	return nil
}

// Remove deletes the persisted program server-side. Terminal: the planner
// must be Reset before starting another draft. Sessions of the program are
// not cascade-deleted here; the backend owns that policy.
func (p *Planner) Remove(ctx context.Context) error {
	if p.state != StatePersisted {
		return fmt.Errorf("%w: only a saved program can be deleted", domain.ErrPrecondition)
	}

	ctx, cancel := context.WithTimeout(ctx, p.contextTimeout)
	defer cancel()
	if err := p.api.DeleteProgram(ctx, p.program.ID); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}

	p.state = StateDeleted
	return nil
}

// Reset discards all local state and returns the planner to a fresh empty
// draft. Purely local; nothing is sent to the server.
func (p *Planner) Reset() {
	p.state = StateEmptyDraft
	p.program = &domain.Program{}
	p.sessions = nil
	p.cells = make(cellIndex)
}

// place resolves the info's day and slot against the program's date range.
func (p *Planner) place(info domain.SessionInfo) (domain.Date, domain.TimeSlot, error) {
	idx, _ := domain.WeekdayIndex(info.Day)
	date, err := ProjectDate(p.program.StartDate, idx)
	if err != nil {
		return domain.Date{}, domain.TimeSlot{}, err
	}
	slot, _ := domain.SlotByID(info.SlotID)
	return date, slot, nil
}

func (p *Planner) indexOf(id string) int {
	for i, s := range p.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
