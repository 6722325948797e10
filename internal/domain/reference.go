package domain

import "context"

// Reference data: the entities the session form draws from, plus the other
// CRUD screens of the console. The schedule engine only reads these; the
// backend owns their lifecycle.

// Department is a track/filière of the institute (e.g. MIAGE, ABF, MID).
// swagger:model Department
type Department struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	HeadTeacher  string `json:"head_teacher"`
	Level        string `json:"level"`
	StudentCount int    `json:"student_count"`
}

// Teacher is a member of the teaching staff.
// swagger:model Teacher
type Teacher struct {
	ID        string `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// Delegate is a class delegate ("délégué").
// swagger:model Delegate
type Delegate struct {
	ID        string `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Class     string `json:"class"`
}

// Course is a teachable unit offered by a department.
// swagger:model Course
type Course struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Hours        int    `json:"hours"`
}

// Subject is a catalog subject with its credit weight.
// swagger:model Subject
type Subject struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	Hours      int    `json:"hours"`
	Department string `json:"department"`
}

// Room is a physical teaching room.
// swagger:model Room
type Room struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Building      string `json:"building"`
	Floor         int    `json:"floor"`
	IsComputerLab bool   `json:"is_computer_lab"`
	HasProjector  bool   `json:"has_projector"`
}

// DepartmentRepository defines storage for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	List(ctx context.Context) ([]*Department, error)
	Update(ctx context.Context, d *Department) (*Department, error)
	Delete(ctx context.Context, id string) error
}

// TeacherRepository defines storage for teachers.
type TeacherRepository interface {
	Create(ctx context.Context, t *Teacher) error
	List(ctx context.Context) ([]*Teacher, error)
	Update(ctx context.Context, t *Teacher) (*Teacher, error)
	Delete(ctx context.Context, id string) error
}

// DelegateRepository defines storage for delegates.
type DelegateRepository interface {
	Create(ctx context.Context, d *Delegate) error
	List(ctx context.Context) ([]*Delegate, error)
	Update(ctx context.Context, d *Delegate) (*Delegate, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository defines storage for courses.
type CourseRepository interface {
	Create(ctx context.Context, c *Course) error
	List(ctx context.Context) ([]*Course, error)
	Update(ctx context.Context, c *Course) (*Course, error)
	Delete(ctx context.Context, id string) error
}

// SubjectRepository defines storage for subjects.
type SubjectRepository interface {
	Create(ctx context.Context, s *Subject) error
	List(ctx context.Context) ([]*Subject, error)
	Update(ctx context.Context, s *Subject) (*Subject, error)
	Delete(ctx context.Context, id string) error
}

// RoomRepository defines storage for rooms.
type RoomRepository interface {
	Create(ctx context.Context, r *Room) error
	List(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, r *Room) (*Room, error)
	Delete(ctx context.Context, id string) error
}
