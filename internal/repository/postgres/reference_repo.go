package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ibamconsole/internal/domain"
)

// Reference-data repositories. All follow the same shape: insert with
// RETURNING id, update with RETURNING the row, and ErrNotFound on misses.

func deleteByID(ctx context.Context, db *sql.DB, table, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
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

type DepartmentRepository struct {
	DB *sql.DB
}

func NewDepartmentRepository(db *sql.DB) domain.DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) error {
	query := `
		INSERT INTO departments (code, name, head_teacher, level, student_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, d.Code, d.Name, d.HeadTeacher, d.Level, d.StudentCount).Scan(&d.ID)
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	query := `SELECT id, code, name, head_teacher, level, student_count FROM departments ORDER BY code`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Department
	for rows.Next() {
		d := &domain.Department{}
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.HeadTeacher, &d.Level, &d.StudentCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DepartmentRepository) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	query := `
		UPDATE departments
		SET code = $2, name = $3, head_teacher = $4, level = $5, student_count = $6
		WHERE id = $1
		RETURNING id, code, name, head_teacher, level, student_count
	`
	out := &domain.Department{}
	err := r.DB.QueryRowContext(ctx, query, d.ID, d.Code, d.Name, d.HeadTeacher, d.Level, d.StudentCount).
		Scan(&out.ID, &out.Code, &out.Name, &out.HeadTeacher, &out.Level, &out.StudentCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "departments", id)
}

type TeacherRepository struct {
	DB *sql.DB
}

func NewTeacherRepository(db *sql.DB) domain.TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(ctx context.Context, t *domain.Teacher) error {
	query := `
		INSERT INTO teachers (last_name, first_name, email, subject)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.LastName, t.FirstName, t.Email, t.Subject).Scan(&t.ID)
}

func (r *TeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	query := `SELECT id, last_name, first_name, email, subject FROM teachers ORDER BY last_name, first_name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Teacher
	for rows.Next() {
		t := &domain.Teacher{}
		if err := rows.Scan(&t.ID, &t.LastName, &t.FirstName, &t.Email, &t.Subject); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TeacherRepository) Update(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error) {
	query := `
		UPDATE teachers
		SET last_name = $2, first_name = $3, email = $4, subject = $5
		WHERE id = $1
		RETURNING id, last_name, first_name, email, subject
	`
	out := &domain.Teacher{}
	err := r.DB.QueryRowContext(ctx, query, t.ID, t.LastName, t.FirstName, t.Email, t.Subject).
		Scan(&out.ID, &out.LastName, &out.FirstName, &out.Email, &out.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "teachers", id)
}

type DelegateRepository struct {
	DB *sql.DB
}

func NewDelegateRepository(db *sql.DB) domain.DelegateRepository {
	return &DelegateRepository{DB: db}
}

func (r *DelegateRepository) Create(ctx context.Context, d *domain.Delegate) error {
	query := `
		INSERT INTO delegates (last_name, first_name, email, class)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, d.LastName, d.FirstName, d.Email, d.Class).Scan(&d.ID)
}

func (r *DelegateRepository) List(ctx context.Context) ([]*domain.Delegate, error) {
	query := `SELECT id, last_name, first_name, email, class FROM delegates ORDER BY last_name, first_name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Delegate
	for rows.Next() {
		d := &domain.Delegate{}
		if err := rows.Scan(&d.ID, &d.LastName, &d.FirstName, &d.Email, &d.Class); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DelegateRepository) Update(ctx context.Context, d *domain.Delegate) (*domain.Delegate, error) {
	query := `
		UPDATE delegates
		SET last_name = $2, first_name = $3, email = $4, class = $5
		WHERE id = $1
		RETURNING id, last_name, first_name, email, class
	`
	out := &domain.Delegate{}
	err := r.DB.QueryRowContext(ctx, query, d.ID, d.LastName, d.FirstName, d.Email, d.Class).
		Scan(&out.ID, &out.LastName, &out.FirstName, &out.Email, &out.Class)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *DelegateRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "delegates", id)
}

type CourseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) domain.CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	query := `
		INSERT INTO courses (code, name, department_id, hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Code, c.Name, c.DepartmentID, c.Hours).Scan(&c.ID)
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, code, name, department_id, hours FROM courses ORDER BY code`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Course
	for rows.Next() {
		c := &domain.Course{}
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.DepartmentID, &c.Hours); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	query := `
		UPDATE courses
		SET code = $2, name = $3, department_id = $4, hours = $5
		WHERE id = $1
		RETURNING id, code, name, department_id, hours
	`
	out := &domain.Course{}
	err := r.DB.QueryRowContext(ctx, query, c.ID, c.Code, c.Name, c.DepartmentID, c.Hours).
		Scan(&out.ID, &out.Code, &out.Name, &out.DepartmentID, &out.Hours)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "courses", id)
}

type SubjectRepository struct {
	DB *sql.DB
}

func NewSubjectRepository(db *sql.DB) domain.SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(ctx context.Context, s *domain.Subject) error {
	query := `
		INSERT INTO subjects (code, name, credits, hours, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.Code, s.Name, s.Credits, s.Hours, s.Department).Scan(&s.ID)
}

func (r *SubjectRepository) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT id, code, name, credits, hours, department FROM subjects ORDER BY code`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Subject
	for rows.Next() {
		s := &domain.Subject{}
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Credits, &s.Hours, &s.Department); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubjectRepository) Update(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	query := `
		UPDATE subjects
		SET code = $2, name = $3, credits = $4, hours = $5, department = $6
		WHERE id = $1
		RETURNING id, code, name, credits, hours, department
	`
	out := &domain.Subject{}
	err := r.DB.QueryRowContext(ctx, query, s.ID, s.Code, s.Name, s.Credits, s.Hours, s.Department).
		Scan(&out.ID, &out.Code, &out.Name, &out.Credits, &out.Hours, &out.Department)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "subjects", id)
}

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, building, floor, is_computer_lab, has_projector)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, room.Name, room.Capacity, room.Building, room.Floor, room.IsComputerLab, room.HasProjector).Scan(&room.ID)
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT id, name, capacity, building, floor, is_computer_lab, has_projector FROM rooms ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Room
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Building, &room.Floor, &room.IsComputerLab, &room.HasProjector); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	query := `
		UPDATE rooms
		SET name = $2, capacity = $3, building = $4, floor = $5, is_computer_lab = $6, has_projector = $7
		WHERE id = $1
		RETURNING id, name, capacity, building, floor, is_computer_lab, has_projector
	`
	out := &domain.Room{}
	err := r.DB.QueryRowContext(ctx, query, room.ID, room.Name, room.Capacity, room.Building, room.Floor, room.IsComputerLab, room.HasProjector).
		Scan(&out.ID, &out.Name, &out.Capacity, &out.Building, &out.Floor, &out.IsComputerLab, &out.HasProjector)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "rooms", id)
}
