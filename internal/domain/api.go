package domain

import "context"

// ScheduleAPI is the external collaborator the schedule engine depends on:
// the console backend seen from the client side. Every call is a single
// round trip with one success/failure outcome; nothing streams. Implementations
// must surface server rejections as *RemoteError and missing resources as
// ErrNotFound.
type ScheduleAPI interface {
	ListDepartments(ctx context.Context) ([]*Department, error)
	ListTeachers(ctx context.Context) ([]*Teacher, error)
	ListCourses(ctx context.Context) ([]*Course, error)
	ListRooms(ctx context.Context) ([]*Room, error)

	ListPrograms(ctx context.Context) ([]*Program, error)
	GetProgram(ctx context.Context, id string) (*Program, error)
	CreateProgram(ctx context.Context, info ProgramInfo) (*Program, error)
	UpdateProgram(ctx context.Context, id string, info ProgramInfo) (*Program, error)
	DeleteProgram(ctx context.Context, id string) error

	GetProgramSessions(ctx context.Context, programID string) ([]*Session, error)
	CreateSession(ctx context.Context, session *Session) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// ScheduleService defines the backend business logic for programs and
// sessions.
type ScheduleService interface {
	CreateProgram(ctx context.Context, info ProgramInfo) (*Program, error)
	GetProgram(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context) ([]*Program, error)
	UpdateProgram(ctx context.Context, id string, info ProgramInfo) (*Program, error)
	DeleteProgram(ctx context.Context, id string) error

	ListProgramSessions(ctx context.Context, programID string) ([]*Session, error)
	CreateSession(ctx context.Context, session *Session) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// ReferenceService defines the backend business logic for reference data.
type ReferenceService interface {
	ListDepartments(ctx context.Context) ([]*Department, error)
	CreateDepartment(ctx context.Context, d *Department) (*Department, error)
	UpdateDepartment(ctx context.Context, d *Department) (*Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListTeachers(ctx context.Context) ([]*Teacher, error)
	CreateTeacher(ctx context.Context, t *Teacher) (*Teacher, error)
	UpdateTeacher(ctx context.Context, t *Teacher) (*Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error

	ListDelegates(ctx context.Context) ([]*Delegate, error)
	CreateDelegate(ctx context.Context, d *Delegate) (*Delegate, error)
	UpdateDelegate(ctx context.Context, d *Delegate) (*Delegate, error)
	DeleteDelegate(ctx context.Context, id string) error

	ListCourses(ctx context.Context) ([]*Course, error)
	CreateCourse(ctx context.Context, c *Course) (*Course, error)
	UpdateCourse(ctx context.Context, c *Course) (*Course, error)
	DeleteCourse(ctx context.Context, id string) error

	ListSubjects(ctx context.Context) ([]*Subject, error)
	CreateSubject(ctx context.Context, s *Subject) (*Subject, error)
	UpdateSubject(ctx context.Context, s *Subject) (*Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	ListRooms(ctx context.Context) ([]*Room, error)
	CreateRoom(ctx context.Context, r *Room) (*Room, error)
	UpdateRoom(ctx context.Context, r *Room) (*Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// TokenVerifier validates a bearer token and returns the subject user ID.
// Tokens are issued by the institute's identity service, not by this backend.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
