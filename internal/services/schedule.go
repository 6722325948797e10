package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ibamconsole/internal/domain"
)

type scheduleService struct {
	programRepo    domain.ProgramRepository
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewScheduleService returns the backend business logic for schedule programs
// and their sessions.
func NewScheduleService(programRepo domain.ProgramRepository, sessionRepo domain.SessionRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		programRepo:    programRepo,
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) CreateProgram(ctx context.Context, info domain.ProgramInfo) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := info.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}

	program := domain.NewProgram(info, time.Now())
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return program, nil
}

func (s *scheduleService) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.programRepo.GetByID(ctx, id)
}

func (s *scheduleService) ListPrograms(ctx context.Context) ([]*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.programRepo.List(ctx)
}

func (s *scheduleService) UpdateProgram(ctx context.Context, id string, info domain.ProgramInfo) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := info.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}
	return s.programRepo.Update(ctx, id, info)
}

// DeleteProgram removes the program only. Its sessions are left in place:
// the console never lists sessions without their program, and keeping them
// preserves the audit trail of past terms.
func (s *scheduleService) DeleteProgram(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.programRepo.Delete(ctx, id)
}

func (s *scheduleService) ListProgramSessions(ctx context.Context, programID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByProgramID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

// validateSession checks the persisted shape of a session as received from a
// client. The planner validates the form fields; this guards the wire.
func validateSession(sess *domain.Session) []string {
	var errs []string
	if sess.ProgramID == "" {
		errs = append(errs, "program is required")
	}
	if sess.CourseID == "" {
		errs = append(errs, "course is required")
	}
	if sess.TeacherID == "" {
		errs = append(errs, "teacher is required")
	}
	if sess.RoomID == "" {
		errs = append(errs, "room is required")
	}
	if sess.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if sess.StartTime == "" || sess.EndTime == "" {
		errs = append(errs, "start and end times are required")
	}
	return errs
}

func (s *scheduleService) CreateSession(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := validateSession(sess); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}
	if _, err := s.programRepo.GetByID(ctx, sess.ProgramID); err != nil {
		return nil, err
	}

	occupied, err := s.sessionRepo.FindByCell(ctx, sess.ProgramID, sess.Date, sess.StartTime, sess.EndTime)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check cell: %w", err)
	}
	if occupied != nil {
		return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrSlotOccupied, sess.Date, sess.StartTime, sess.EndTime)
	}

	sess.CreatedAt = time.Now()
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *scheduleService) UpdateSession(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := validateSession(sess); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}
	if _, err := s.sessionRepo.GetByID(ctx, sess.ID); err != nil {
		return nil, err
	}

	occupied, err := s.sessionRepo.FindByCell(ctx, sess.ProgramID, sess.Date, sess.StartTime, sess.EndTime)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check cell: %w", err)
	}
	if occupied != nil && occupied.ID != sess.ID {
		return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrSlotOccupied, sess.Date, sess.StartTime, sess.EndTime)
	}

	return s.sessionRepo.Update(ctx, sess)
}

func (s *scheduleService) DeleteSession(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.Delete(ctx, id)
}
