package domain

import (
	"context"
	"time"
)

// Session is a single scheduled class ("séance") occupying one grid cell of a
// program. Date, StartTime and EndTime together address the cell: within one
// program no two sessions may share them.
// swagger:model Session
type Session struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"program_id"`
	CourseID  string    `json:"course_id"`
	TeacherID string    `json:"teacher_id"`
	RoomID    string    `json:"room_id"`
	SlotID    int       `json:"slot_id"`
	Date      Date      `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionInfo carries the user-supplied fields of a session before it is
// placed on the grid. Add and edit both take the full set; the session form
// is always submitted whole, never as a partial patch.
type SessionInfo struct {
	Day       WeekDay `json:"day"`
	SlotID    int     `json:"slot_id"`
	CourseID  string  `json:"course_id"`
	TeacherID string  `json:"teacher_id"`
	RoomID    string  `json:"room_id"`
}

// Validate returns the list of problems with the info; nil means valid.
func (i SessionInfo) Validate() []string {
	var errs []string
	if _, ok := WeekdayIndex(i.Day); !ok {
		errs = append(errs, "day is required and must be a weekday of the grid")
	}
	if _, ok := SlotByID(i.SlotID); !ok {
		errs = append(errs, "slot is required and must be a catalog slot")
	}
	if i.CourseID == "" {
		errs = append(errs, "course is required")
	}
	if i.TeacherID == "" {
		errs = append(errs, "teacher is required")
	}
	if i.RoomID == "" {
		errs = append(errs, "room is required")
	}
	return errs
}

// SessionRepository defines storage for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByProgramID(ctx context.Context, programID string) ([]*Session, error)
	Update(ctx context.Context, session *Session) (*Session, error)
	Delete(ctx context.Context, id string) error
	// FindByCell returns the session of the program occupying the exact
	// (date, start, end) cell, or ErrNotFound.
	FindByCell(ctx context.Context, programID string, date Date, startTime, endTime string) (*Session, error)
}
