package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"ibamconsole/internal/delivery/http/helpers"
	"ibamconsole/internal/domain"
)

// writeServiceError maps domain errors to HTTP statuses. Unknown errors are
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrSlotOccupied):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateSessionRequest is the request body for POST /sessions. The client
// supplies the already projected date and the slot's times; the server only
// re-checks that the cell is free.
type CreateSessionRequest struct {
	ProgramID string      `json:"program_id"`
	CourseID  string      `json:"course_id"`
	TeacherID string      `json:"teacher_id"`
	RoomID    string      `json:"room_id"`
	SlotID    int         `json:"slot_id"`
	Date      domain.Date `json:"date"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.ProgramID == "" {
		errs = append(errs, "program_id is required")
	}
	if c.CourseID == "" {
		errs = append(errs, "course_id is required")
	}
	if c.TeacherID == "" {
		errs = append(errs, "teacher_id is required")
	}
	if c.RoomID == "" {
		errs = append(errs, "room_id is required")
	}
	if _, ok := domain.SlotByID(c.SlotID); !ok {
		errs = append(errs, "slot_id must be a catalog slot")
	}
	if c.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if c.StartTime == "" || c.EndTime == "" {
		errs = append(errs, "start_time and end_time are required")
	}
	return errs
}

func (c CreateSessionRequest) toSession() *domain.Session {
	return &domain.Session{
		ProgramID: c.ProgramID,
		CourseID:  c.CourseID,
		TeacherID: c.TeacherID,
		RoomID:    c.RoomID,
		SlotID:    c.SlotID,
		Date:      c.Date,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
	}
}

// ProgramSuccessResponse is the success envelope carrying a single program.
type ProgramSuccessResponse struct {
	Data  *domain.Program   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionSuccessResponse is the success envelope carrying a single session.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPrograms godoc
// @Summary List schedule programs
// @Description Lists all schedule programs, newest first.
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the program list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs [get]
func (c *ScheduleController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := c.Service.ListPrograms(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if programs == nil {
		programs = []*domain.Program{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, programs)
}

// CreateProgram godoc
// @Summary Create a schedule program
// @Description Creates a program from its title, department, and date range. The id and created_at are server-generated.
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body domain.ProgramInfo true "Program fields"
// @Success 201 {object} controllers.ProgramSuccessResponse "data contains the created program"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs [post]
func (c *ScheduleController) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var info domain.ProgramInfo
	if !helpers.DecodeAndValidate(w, r, &info) {
		return
	}
	program, err := c.Service.CreateProgram(r.Context(), info)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, program)
}

// GetProgram godoc
// @Summary Get a program by ID
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param programID path string true "Program ID"
// @Success 200 {object} controllers.ProgramSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs/{programID} [get]
func (c *ScheduleController) GetProgram(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("programID")
	if programID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing programID")
		return
	}
	program, err := c.Service.GetProgram(r.Context(), programID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, program)
}

// UpdateProgram godoc
// @Summary Update a program
// @Description Replaces the program's title, department, and date range. The body carries the full set of fields; partial updates are not supported.
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programID path string true "Program ID"
// @Param program body domain.ProgramInfo true "Program fields"
// @Success 200 {object} controllers.ProgramSuccessResponse "data contains the updated program"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs/{programID} [put]
func (c *ScheduleController) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("programID")
	if programID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing programID")
		return
	}
	var info domain.ProgramInfo
	if !helpers.DecodeAndValidate(w, r, &info) {
		return
	}
	program, err := c.Service.UpdateProgram(r.Context(), programID, info)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, program)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param programID path string true "Program ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs/{programID} [delete]
func (c *ScheduleController) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("programID")
	if programID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing programID")
		return
	}
	if err := c.Service.DeleteProgram(r.Context(), programID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ListProgramSessions godoc
// @Summary List the sessions of a program
// @Description Returns all sessions of the program ordered by date then start time. An existing program with no sessions yields an empty list, not an error.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param programID path string true "Program ID"
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /programs/{programID}/sessions [get]
func (c *ScheduleController) ListProgramSessions(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("programID")
	if programID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing programID")
		return
	}
	sessions, err := c.Service.ListProgramSessions(r.Context(), programID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Create a session
// @Description Places a session on a program's grid cell. Rejected with 409 if the (date, start_time, end_time) cell is already occupied within the program.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body CreateSessionRequest true "Session fields"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [post]
func (c *ScheduleController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.CreateSession(r.Context(), req.toSession())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary Update a session
// @Description Replaces the session's fields, possibly moving it to another grid cell. Rejected with 409 if the target cell is occupied by another session.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param session body CreateSessionRequest true "Session fields"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [put]
func (c *ScheduleController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := req.toSession()
	session.ID = sessionID
	updated, err := c.Service.UpdateSession(r.Context(), session)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [delete]
func (c *ScheduleController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	if err := c.Service.DeleteSession(r.Context(), sessionID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ListSlots godoc
// @Summary List the time slot catalog
// @Description Returns the fixed catalog of teaching slots. The catalog is compiled in; it cannot be edited at runtime.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the slot catalog"
// @Router /slots [get]
func (c *ScheduleController) ListSlots(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.Slots())
}
