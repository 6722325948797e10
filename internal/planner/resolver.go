package planner

import "ibamconsole/internal/domain"

// FindSession returns the session occupying the (day, slot) grid cell, or nil
// when the cell is free. The cell's concrete date is projected from
// rangeStart; a session occupies the cell when its date and its exact
// (start, end) times match the slot. Deterministic and side-effect-free;
// linear in the number of sessions, which is fine at the scale of one
// program (tens of sessions). The Planner keeps a cell index for its own
// lookups instead of scanning.
func FindSession(sessions []*domain.Session, day domain.WeekDay, slot domain.TimeSlot, rangeStart domain.Date) *domain.Session {
	idx, ok := domain.WeekdayIndex(day)
	if !ok {
		return nil
	}
	target, err := ProjectDate(rangeStart, idx)
	if err != nil {
		return nil
	}
	for _, s := range sessions {
		if s.Date.Equal(target) && s.StartTime == slot.Start && s.EndTime == slot.End {
			return s
		}
	}
	return nil
}

// cellKey addresses one grid cell by its persisted coordinates.
type cellKey struct {
	date  string
	start string
	end   string
}

func keyOf(s *domain.Session) cellKey {
	return cellKey{date: s.Date.String(), start: s.StartTime, end: s.EndTime}
}

// cellIndex maps occupied grid cells to their sessions for O(1) lookup.
type cellIndex map[cellKey]*domain.Session

func indexSessions(sessions []*domain.Session) cellIndex {
	idx := make(cellIndex, len(sessions))
	for _, s := range sessions {
		idx[keyOf(s)] = s
	}
	return idx
}

func (idx cellIndex) at(date domain.Date, start, end string) *domain.Session {
	return idx[cellKey{date: date.String(), start: start, end: end}]
}

func (idx cellIndex) add(s *domain.Session)    { idx[keyOf(s)] = s }
func (idx cellIndex) remove(s *domain.Session) { delete(idx, keyOf(s)) }
