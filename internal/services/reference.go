package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ibamconsole/internal/domain"
)

type referenceService struct {
	departmentRepo domain.DepartmentRepository
	teacherRepo    domain.TeacherRepository
	delegateRepo   domain.DelegateRepository
	courseRepo     domain.CourseRepository
	subjectRepo    domain.SubjectRepository
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

// NewReferenceService returns the backend business logic for the console's
// reference data screens.
func NewReferenceService(
	departmentRepo domain.DepartmentRepository,
	teacherRepo domain.TeacherRepository,
	delegateRepo domain.DelegateRepository,
	courseRepo domain.CourseRepository,
	subjectRepo domain.SubjectRepository,
	roomRepo domain.RoomRepository,
	timeout time.Duration,
) domain.ReferenceService {
	return &referenceService{
		departmentRepo: departmentRepo,
		teacherRepo:    teacherRepo,
		delegateRepo:   delegateRepo,
		courseRepo:     courseRepo,
		subjectRepo:    subjectRepo,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func invalid(errs []string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
}

func (s *referenceService) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.departmentRepo.List(ctx)
}

func (s *referenceService) CreateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if d.Code == "" {
		errs = append(errs, "code is required")
	}
	if d.Name == "" {
		errs = append(errs, "name is required")
	}
	if len(errs) > 0 {
		return nil, invalid(errs)
	}
	if err := s.departmentRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *referenceService) UpdateDepartment(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.departmentRepo.Update(ctx, d)
}

func (s *referenceService) DeleteDepartment(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.departmentRepo.Delete(ctx, id)
}

func (s *referenceService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.teacherRepo.List(ctx)
}

func (s *referenceService) CreateTeacher(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if t.LastName == "" {
		errs = append(errs, "last name is required")
	}
	if t.Email == "" {
		errs = append(errs, "email is required")
	}
	if len(errs) > 0 {
		return nil, invalid(errs)
	}
	if err := s.teacherRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}
	return t, nil
}

func (s *referenceService) UpdateTeacher(ctx context.Context, t *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.teacherRepo.Update(ctx, t)
}

func (s *referenceService) DeleteTeacher(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.teacherRepo.Delete(ctx, id)
}

func (s *referenceService) ListDelegates(ctx context.Context) ([]*domain.Delegate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.delegateRepo.List(ctx)
}

func (s *referenceService) CreateDelegate(ctx context.Context, d *domain.Delegate) (*domain.Delegate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if d.LastName == "" {
		errs = append(errs, "last name is required")
	}
	if d.Email == "" {
		errs = append(errs, "email is required")
	}
	if len(errs) > 0 {
		return nil, invalid(errs)
	}
	if err := s.delegateRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create delegate: %w", err)
	}
	return d, nil
}

func (s *referenceService) UpdateDelegate(ctx context.Context, d *domain.Delegate) (*domain.Delegate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.delegateRepo.Update(ctx, d)
}

func (s *referenceService) DeleteDelegate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.delegateRepo.Delete(ctx, id)
}

func (s *referenceService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.courseRepo.List(ctx)
}

func (s *referenceService) CreateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if c.Code == "" {
		errs = append(errs, "code is required")
	}
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if len(errs) > 0 {
		return nil, invalid(errs)
	}
	if err := s.courseRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return c, nil
}

func (s *referenceService) UpdateCourse(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.courseRepo.Update(ctx, c)
}

func (s *referenceService) DeleteCourse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.courseRepo.Delete(ctx, id)
}

func (s *referenceService) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.subjectRepo.List(ctx)
}

func (s *referenceService) CreateSubject(ctx context.Context, sub *domain.Subject) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if sub.Code == "" {
		errs = append(errs, "code is required")
	}
	if sub.Name == "" {
		errs = append(errs, "name is required")
	}
	if len(errs) > 0 {
		return nil, invalid(errs)
	}
	if err := s.subjectRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return sub, nil
}

func (s *referenceService) UpdateSubject(ctx context.Context, sub *domain.Subject) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.subjectRepo.Update(ctx, sub)
}

func (s *referenceService) DeleteSubject(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.subjectRepo.Delete(ctx, id)
}

func (s *referenceService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.List(ctx)
}

func (s *referenceService) CreateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if r.Name == "" {
		return nil, invalid([]string{"name is required"})
	}
	if err := s.roomRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return r, nil
}

func (s *referenceService) UpdateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.Update(ctx, r)
}

func (s *referenceService) DeleteRoom(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.Delete(ctx, id)
}
