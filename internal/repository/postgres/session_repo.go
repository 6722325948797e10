package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"ibamconsole/internal/domain"
)

// uniqueViolation is the Postgres error code raised when the
// (program_id, date, start_time, end_time) unique index is hit.
const uniqueViolation = "23505"

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{DB: db}
}

const sessionColumns = `id, program_id, course_id, teacher_id, room_id, slot_id, date, start_time, end_time, created_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(&s.ID, &s.ProgramID, &s.CourseID, &s.TeacherID, &s.RoomID, &s.SlotID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (program_id, course_id, teacher_id, room_id, slot_id, date, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ProgramID, s.CourseID, s.TeacherID, s.RoomID, s.SlotID, s.Date, s.StartTime, s.EndTime, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrSlotOccupied
		}
		return err
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) ListByProgramID(ctx context.Context, programID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE program_id = $1
		ORDER BY date, start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	query := `
		UPDATE sessions
		SET course_id = $2, teacher_id = $3, room_id = $4, slot_id = $5, date = $6, start_time = $7, end_time = $8
		WHERE id = $1
		RETURNING ` + sessionColumns
	updated, err := scanSession(r.DB.QueryRowContext(ctx, query,
		s.ID, s.CourseID, s.TeacherID, s.RoomID, s.SlotID, s.Date, s.StartTime, s.EndTime,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrSlotOccupied
		}
		return nil, err
	}
	return updated, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) FindByCell(ctx context.Context, programID string, date domain.Date, startTime, endTime string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE program_id = $1 AND date = $2 AND start_time = $3 AND end_time = $4
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, programID, date, startTime, endTime))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
