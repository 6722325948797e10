package controllers

import (
	"log/slog"
	"net/http"

	"ibamconsole/internal/delivery/http/helpers"
	"ibamconsole/internal/domain"
)

// ReferenceController serves the console's reference-data screens:
// departments, teachers, delegates, courses, subjects, and rooms. The
// handlers are uniform CRUD; field-level validation lives in the service.
type ReferenceController struct {
	Logger  *slog.Logger
	Service domain.ReferenceService
}

func NewReferenceController(logger *slog.Logger, svc domain.ReferenceService) *ReferenceController {
	return &ReferenceController{
		Logger:  logger,
		Service: svc,
	}
}

func listHandler[T any](c *ReferenceController, list func(r *http.Request) ([]*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r)
		if err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
		if items == nil {
			items = []*T{}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, items)
	}
}

func createHandler[T any](c *ReferenceController, create func(r *http.Request, entity *T) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if !helpers.DecodeAndValidate(w, r, &entity) {
			return
		}
		created, err := create(r, &entity)
		if err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusCreated, created)
	}
}

func updateHandler[T any](c *ReferenceController, setID func(entity *T, id string), update func(r *http.Request, entity *T) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
			return
		}
		var entity T
		if !helpers.DecodeAndValidate(w, r, &entity) {
			return
		}
		setID(&entity, id)
		updated, err := update(r, &entity)
		if err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, updated)
	}
}

func deleteHandler(c *ReferenceController, del func(r *http.Request, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
			return
		}
		if err := del(r, id); err != nil {
			writeServiceError(w, r, c.Logger, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, nil)
	}
}

// ListDepartments godoc
// @Summary List departments
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /departments [get]
func (c *ReferenceController) ListDepartments(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Department, error) {
		return c.Service.ListDepartments(r.Context())
	})(w, r)
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body domain.Department true "Department fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /departments [post]
func (c *ReferenceController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, d *domain.Department) (*domain.Department, error) {
		return c.Service.CreateDepartment(r.Context(), d)
	})(w, r)
}

// UpdateDepartment godoc
// @Summary Update a department
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param department body domain.Department true "Department fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /departments/{id} [put]
func (c *ReferenceController) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(d *domain.Department, id string) { d.ID = id },
		func(r *http.Request, d *domain.Department) (*domain.Department, error) {
			return c.Service.UpdateDepartment(r.Context(), d)
		})(w, r)
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /departments/{id} [delete]
func (c *ReferenceController) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteDepartment(r.Context(), id)
	})(w, r)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /teachers [get]
func (c *ReferenceController) ListTeachers(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Teacher, error) {
		return c.Service.ListTeachers(r.Context())
	})(w, r)
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teacher body domain.Teacher true "Teacher fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /teachers [post]
func (c *ReferenceController) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, t *domain.Teacher) (*domain.Teacher, error) {
		return c.Service.CreateTeacher(r.Context(), t)
	})(w, r)
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param teacher body domain.Teacher true "Teacher fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teachers/{id} [put]
func (c *ReferenceController) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(t *domain.Teacher, id string) { t.ID = id },
		func(r *http.Request, t *domain.Teacher) (*domain.Teacher, error) {
			return c.Service.UpdateTeacher(r.Context(), t)
		})(w, r)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teachers/{id} [delete]
func (c *ReferenceController) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteTeacher(r.Context(), id)
	})(w, r)
}

// ListDelegates godoc
// @Summary List class delegates
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /delegates [get]
func (c *ReferenceController) ListDelegates(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Delegate, error) {
		return c.Service.ListDelegates(r.Context())
	})(w, r)
}

// CreateDelegate godoc
// @Summary Create a class delegate
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param delegate body domain.Delegate true "Delegate fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /delegates [post]
func (c *ReferenceController) CreateDelegate(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, d *domain.Delegate) (*domain.Delegate, error) {
		return c.Service.CreateDelegate(r.Context(), d)
	})(w, r)
}

// UpdateDelegate godoc
// @Summary Update a class delegate
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Delegate ID"
// @Param delegate body domain.Delegate true "Delegate fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /delegates/{id} [put]
func (c *ReferenceController) UpdateDelegate(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(d *domain.Delegate, id string) { d.ID = id },
		func(r *http.Request, d *domain.Delegate) (*domain.Delegate, error) {
			return c.Service.UpdateDelegate(r.Context(), d)
		})(w, r)
}

// DeleteDelegate godoc
// @Summary Delete a class delegate
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Delegate ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /delegates/{id} [delete]
func (c *ReferenceController) DeleteDelegate(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteDelegate(r.Context(), id)
	})(w, r)
}

// ListCourses godoc
// @Summary List courses
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /courses [get]
func (c *ReferenceController) ListCourses(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Course, error) {
		return c.Service.ListCourses(r.Context())
	})(w, r)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body domain.Course true "Course fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /courses [post]
func (c *ReferenceController) CreateCourse(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, course *domain.Course) (*domain.Course, error) {
		return c.Service.CreateCourse(r.Context(), course)
	})(w, r)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param course body domain.Course true "Course fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{id} [put]
func (c *ReferenceController) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(course *domain.Course, id string) { course.ID = id },
		func(r *http.Request, course *domain.Course) (*domain.Course, error) {
			return c.Service.UpdateCourse(r.Context(), course)
		})(w, r)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{id} [delete]
func (c *ReferenceController) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteCourse(r.Context(), id)
	})(w, r)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /subjects [get]
func (c *ReferenceController) ListSubjects(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Subject, error) {
		return c.Service.ListSubjects(r.Context())
	})(w, r)
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject body domain.Subject true "Subject fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /subjects [post]
func (c *ReferenceController) CreateSubject(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, s *domain.Subject) (*domain.Subject, error) {
		return c.Service.CreateSubject(r.Context(), s)
	})(w, r)
}

// UpdateSubject godoc
// @Summary Update a subject
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param subject body domain.Subject true "Subject fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /subjects/{id} [put]
func (c *ReferenceController) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(s *domain.Subject, id string) { s.ID = id },
		func(r *http.Request, s *domain.Subject) (*domain.Subject, error) {
			return c.Service.UpdateSubject(r.Context(), s)
		})(w, r)
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /subjects/{id} [delete]
func (c *ReferenceController) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteSubject(r.Context(), id)
	})(w, r)
}

// ListRooms godoc
// @Summary List rooms
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /rooms [get]
func (c *ReferenceController) ListRooms(w http.ResponseWriter, r *http.Request) {
	listHandler(c, func(r *http.Request) ([]*domain.Room, error) {
		return c.Service.ListRooms(r.Context())
	})(w, r)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body domain.Room true "Room fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /rooms [post]
func (c *ReferenceController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	createHandler(c, func(r *http.Request, room *domain.Room) (*domain.Room, error) {
		return c.Service.CreateRoom(r.Context(), room)
	})(w, r)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param room body domain.Room true "Room fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /rooms/{id} [put]
func (c *ReferenceController) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	updateHandler(c,
		func(room *domain.Room, id string) { room.ID = id },
		func(r *http.Request, room *domain.Room) (*domain.Room, error) {
			return c.Service.UpdateRoom(r.Context(), room)
		})(w, r)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /rooms/{id} [delete]
func (c *ReferenceController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	deleteHandler(c, func(r *http.Request, id string) error {
		return c.Service.DeleteRoom(r.Context(), id)
	})(w, r)
}
