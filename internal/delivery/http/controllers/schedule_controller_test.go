package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ibamconsole/internal/delivery/http/helpers"
	"ibamconsole/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeScheduleService implements domain.ScheduleService for handler tests.
type fakeScheduleService struct {
	createProgramErr    error
	createProgramResult *domain.Program
	getProgramErr       error
	getProgramResult    *domain.Program
	listProgramsResult  []*domain.Program
	updateProgramErr    error
	updateProgramResult *domain.Program
	deleteProgramErr    error
	listSessionsErr     error
	listSessionsResult  []*domain.Session
	createSessionErr    error
	createSessionResult *domain.Session
	updateSessionErr    error
	updateSessionResult *domain.Session
	deleteSessionErr    error

	lastCreateInfo    domain.ProgramInfo
	lastCreateSession *domain.Session
	lastDeleteID      string
}

func (f *fakeScheduleService) CreateProgram(_ context.Context, info domain.ProgramInfo) (*domain.Program, error) {
	f.lastCreateInfo = info
	return f.createProgramResult, f.createProgramErr
}

func (f *fakeScheduleService) GetProgram(_ context.Context, _ string) (*domain.Program, error) {
	return f.getProgramResult, f.getProgramErr
}

func (f *fakeScheduleService) ListPrograms(_ context.Context) ([]*domain.Program, error) {
	return f.listProgramsResult, nil
}

func (f *fakeScheduleService) UpdateProgram(_ context.Context, _ string, _ domain.ProgramInfo) (*domain.Program, error) {
	return f.updateProgramResult, f.updateProgramErr
}

func (f *fakeScheduleService) DeleteProgram(_ context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteProgramErr
}

func (f *fakeScheduleService) ListProgramSessions(_ context.Context, _ string) ([]*domain.Session, error) {
	if f.listSessionsErr != nil {
		return nil, f.listSessionsErr
	}
	if f.listSessionsResult == nil {
		return []*domain.Session{}, nil
	}
	return f.listSessionsResult, nil
}

func (f *fakeScheduleService) CreateSession(_ context.Context, s *domain.Session) (*domain.Session, error) {
	f.lastCreateSession = s
	return f.createSessionResult, f.createSessionErr
}

func (f *fakeScheduleService) UpdateSession(_ context.Context, _ *domain.Session) (*domain.Session, error) {
	return f.updateSessionResult, f.updateSessionErr
}

func (f *fakeScheduleService) DeleteSession(_ context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteSessionErr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestScheduleController_CreateProgram(t *testing.T) {
	validBody := `{"title":"MIAGE S6","department_id":"dep-1","start_date":"2024-09-02","end_date":"2024-12-20"}`

	tests := []struct {
		name       string
		body       string
		svc        *fakeScheduleService
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: validBody,
			svc: &fakeScheduleService{createProgramResult: &domain.Program{
				ID:    "prog-1",
				Title: "MIAGE S6",
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title rejected before service",
			body:       `{"department_id":"dep-1","start_date":"2024-09-02","end_date":"2024-12-20"}`,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"title":"x","department_id":"d","start_date":"2024-09-02","end_date":"2024-12-20","extra":1}`,
			svc:        &fakeScheduleService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewScheduleController(testLogger, tt.svc)
			req := httptest.NewRequest(http.MethodPost, "http://test/programs", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateProgram(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				assert.Zero(t, tt.svc.lastCreateInfo.Title, "service must not be called")
			} else {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "MIAGE S6", tt.svc.lastCreateInfo.Title)
			}
		})
	}
}

func TestScheduleController_GetProgram(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{getProgramErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "http://test/programs/prog-404", nil)
		req.SetPathValue("programID", "prog-404")
		rr := httptest.NewRecorder()

		ctrl.GetProgram(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})

	t.Run("found", func(t *testing.T) {
		svc := &fakeScheduleService{getProgramResult: &domain.Program{ID: "prog-1", Title: "MIAGE S6"}}
		ctrl := NewScheduleController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "http://test/programs/prog-1", nil)
		req.SetPathValue("programID", "prog-1")
		rr := httptest.NewRecorder()

		ctrl.GetProgram(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestScheduleController_CreateSession(t *testing.T) {
	validBody := `{"program_id":"prog-1","course_id":"course-1","teacher_id":"teacher-1","room_id":"room-1","slot_id":1,"date":"2024-09-02","start_time":"08h00","end_time":"12h00"}`

	t.Run("created", func(t *testing.T) {
		svc := &fakeScheduleService{createSessionResult: &domain.Session{
			ID:        "sess-1",
			ProgramID: "prog-1",
			Date:      domain.NewDate(2024, time.September, 2),
			StartTime: "08h00",
			EndTime:   "12h00",
		}}
		ctrl := NewScheduleController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPost, "http://test/sessions", strings.NewReader(validBody))
		rr := httptest.NewRecorder()

		ctrl.CreateSession(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, svc.lastCreateSession)
		assert.Equal(t, "2024-09-02", svc.lastCreateSession.Date.String())
		assert.Equal(t, 1, svc.lastCreateSession.SlotID)
	})

	t.Run("occupied cell maps to 409", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{createSessionErr: domain.ErrSlotOccupied})
		req := httptest.NewRequest(http.MethodPost, "http://test/sessions", strings.NewReader(validBody))
		rr := httptest.NewRecorder()

		ctrl.CreateSession(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeConflict, envelope.Error.Code)
	})

	t.Run("unknown program maps to 404", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{createSessionErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodPost, "http://test/sessions", strings.NewReader(validBody))
		rr := httptest.NewRecorder()

		ctrl.CreateSession(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown slot rejected before service", func(t *testing.T) {
		svc := &fakeScheduleService{}
		ctrl := NewScheduleController(testLogger, svc)
		body := strings.Replace(validBody, `"slot_id":1`, `"slot_id":9`, 1)
		req := httptest.NewRequest(http.MethodPost, "http://test/sessions", strings.NewReader(body))
		rr := httptest.NewRecorder()

		ctrl.CreateSession(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, svc.lastCreateSession)
	})
}

func TestScheduleController_UpdateSession(t *testing.T) {
	body := `{"program_id":"prog-1","course_id":"course-1","teacher_id":"teacher-1","room_id":"room-1","slot_id":2,"date":"2024-09-04","start_time":"14h00","end_time":"18h00"}`

	t.Run("moving onto an occupied cell maps to 409", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{updateSessionErr: domain.ErrSlotOccupied})
		req := httptest.NewRequest(http.MethodPut, "http://test/sessions/sess-1", strings.NewReader(body))
		req.SetPathValue("sessionID", "sess-1")
		rr := httptest.NewRecorder()

		ctrl.UpdateSession(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("updated", func(t *testing.T) {
		svc := &fakeScheduleService{updateSessionResult: &domain.Session{ID: "sess-1", SlotID: 2}}
		ctrl := NewScheduleController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPut, "http://test/sessions/sess-1", strings.NewReader(body))
		req.SetPathValue("sessionID", "sess-1")
		rr := httptest.NewRecorder()

		ctrl.UpdateSession(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestScheduleController_DeleteSession(t *testing.T) {
	t.Run("unknown session maps to 404", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{deleteSessionErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodDelete, "http://test/sessions/sess-404", nil)
		req.SetPathValue("sessionID", "sess-404")
		rr := httptest.NewRecorder()

		ctrl.DeleteSession(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		svc := &fakeScheduleService{}
		ctrl := NewScheduleController(testLogger, svc)
		req := httptest.NewRequest(http.MethodDelete, "http://test/sessions/sess-1", nil)
		req.SetPathValue("sessionID", "sess-1")
		rr := httptest.NewRecorder()

		ctrl.DeleteSession(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "sess-1", svc.lastDeleteID)
	})
}

func TestScheduleController_ListProgramSessions(t *testing.T) {
	t.Run("empty program yields empty list", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{})
		req := httptest.NewRequest(http.MethodGet, "http://test/programs/prog-1/sessions", nil)
		req.SetPathValue("programID", "prog-1")
		rr := httptest.NewRecorder()

		ctrl.ListProgramSessions(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.Nil(t, envelope.Error)
		items, ok := envelope.Data.([]any)
		require.True(t, ok, "data must be a JSON array")
		assert.Empty(t, items)
	})

	t.Run("unknown program maps to 404", func(t *testing.T) {
		ctrl := NewScheduleController(testLogger, &fakeScheduleService{listSessionsErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "http://test/programs/prog-404/sessions", nil)
		req.SetPathValue("programID", "prog-404")
		rr := httptest.NewRecorder()

		ctrl.ListProgramSessions(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestScheduleController_ListSlots(t *testing.T) {
	ctrl := NewScheduleController(testLogger, &fakeScheduleService{})
	req := httptest.NewRequest(http.MethodGet, "http://test/slots", nil)
	rr := httptest.NewRecorder()

	ctrl.ListSlots(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	items, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
}
