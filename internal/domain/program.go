package domain

import (
	"context"
	"time"
)

// Program is one term's schedule ("emploi du temps") for one department. A
// program with an empty ID is a local draft that has never been persisted;
// such a program cannot own sessions.
// swagger:model Program
type Program struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	DepartmentID string    `json:"department_id"`
	StartDate    Date      `json:"start_date"`
	EndDate      Date      `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgramInfo carries the user-supplied program fields. It is validated as a
// whole before being turned into a persisted Program; partial field merging
// is deliberately not supported.
type ProgramInfo struct {
	Title        string `json:"title"`
	DepartmentID string `json:"department_id"`
	StartDate    Date   `json:"start_date"`
	EndDate      Date   `json:"end_date"`
}

// Validate returns the list of problems with the info; nil means valid.
func (i ProgramInfo) Validate() []string {
	var errs []string
	if i.Title == "" {
		errs = append(errs, "title is required")
	}
	if i.DepartmentID == "" {
		errs = append(errs, "department is required")
	}
	if i.StartDate.IsZero() {
		errs = append(errs, "start date is required")
	}
	if i.EndDate.IsZero() {
		errs = append(errs, "end date is required")
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && i.StartDate.After(i.EndDate) {
		errs = append(errs, "start date must not be after end date")
	}
	return errs
}

// NewProgram returns an unpersisted Program from validated info. ID is set by
// the repository (or the remote collaborator) on create.
func NewProgram(info ProgramInfo, createdAt time.Time) *Program {
	return &Program{
		Title:        info.Title,
		DepartmentID: info.DepartmentID,
		StartDate:    info.StartDate,
		EndDate:      info.EndDate,
		CreatedAt:    createdAt,
	}
}

// ProgramRepository defines storage for schedule programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	GetByID(ctx context.Context, id string) (*Program, error)
	List(ctx context.Context) ([]*Program, error)
	Update(ctx context.Context, id string, info ProgramInfo) (*Program, error)
	Delete(ctx context.Context, id string) error
}
