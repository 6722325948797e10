package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ibamconsole/internal/domain"
)

type ProgramRepository struct {
	DB *sql.DB
}

func NewProgramRepository(db *sql.DB) domain.ProgramRepository {
	return &ProgramRepository{DB: db}
}

func (r *ProgramRepository) Create(ctx context.Context, p *domain.Program) error {
	query := `
		INSERT INTO programs (title, department_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Title, p.DepartmentID, p.StartDate, p.EndDate, p.CreatedAt).Scan(&p.ID)
}

func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	query := `
		SELECT id, title, department_id, start_date, end_date, created_at
		FROM programs
		WHERE id = $1
	`
	p := &domain.Program{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.DepartmentID, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]*domain.Program, error) {
	query := `
		SELECT id, title, department_id, start_date, end_date, created_at
		FROM programs
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var programs []*domain.Program
	for rows.Next() {
		p := &domain.Program{}
		if err := rows.Scan(&p.ID, &p.Title, &p.DepartmentID, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) Update(ctx context.Context, id string, info domain.ProgramInfo) (*domain.Program, error) {
	query := `
		UPDATE programs
		SET title = $2, department_id = $3, start_date = $4, end_date = $5
		WHERE id = $1
		RETURNING id, title, department_id, start_date, end_date, created_at
	`
	p := &domain.Program{}
	err := r.DB.QueryRowContext(ctx, query, id, info.Title, info.DepartmentID, info.StartDate, info.EndDate).
		Scan(&p.ID, &p.Title, &p.DepartmentID, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
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
