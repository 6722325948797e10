package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"ibamconsole/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgramRepo is an in-memory ProgramRepository for tests.
type fakeProgramRepo struct {
	byID   map[string]*domain.Program
	nextID int
	err    error // if set, Create returns this error
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{byID: make(map[string]*domain.Program), nextID: 1}
}

func (f *fakeProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	if f.err != nil {
		return f.err
	}
	p.ID = fmt.Sprintf("prog-%d", f.nextID)
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	var out []*domain.Program
	for _, p := range f.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProgramRepo) Update(ctx context.Context, id string, info domain.ProgramInfo) (*domain.Program, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Title = info.Title
	p.DepartmentID = info.DepartmentID
	p.StartDate = info.StartDate
	p.EndDate = info.EndDate
	return p, nil
}

func (f *fakeProgramRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	byID      map[string]*domain.Session
	nextID    int
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByProgramID(ctx context.Context, programID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.ProgramID == programID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if _, ok := f.byID[s.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) FindByCell(ctx context.Context, programID string, date domain.Date, startTime, endTime string) (*domain.Session, error) {
	for _, s := range f.byID {
		if s.ProgramID == programID && s.Date.Equal(date) && s.StartTime == startTime && s.EndTime == endTime {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func testScheduleService() (domain.ScheduleService, *fakeProgramRepo, *fakeSessionRepo) {
	programs := newFakeProgramRepo()
	sessions := newFakeSessionRepo()
	return NewScheduleService(programs, sessions, 2*time.Second), programs, sessions
}

func validInfo() domain.ProgramInfo {
	return domain.ProgramInfo{
		Title:        "MIAGE S6",
		DepartmentID: "dep-1",
		StartDate:    domain.NewDate(2024, time.September, 2),
		EndDate:      domain.NewDate(2024, time.December, 20),
	}
}

func TestScheduleService_CreateProgram(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, programs, _ := testScheduleService()
		p, err := svc.CreateProgram(context.Background(), validInfo())
		require.NoError(t, err)
		assert.Equal(t, "prog-1", p.ID)
		assert.Len(t, programs.byID, 1)
	})

	t.Run("invalid info rejected before storage", func(t *testing.T) {
		svc, programs, _ := testScheduleService()
		info := validInfo()
		info.Title = ""
		_, err := svc.CreateProgram(context.Background(), info)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, programs.byID)
	})
}

func TestScheduleService_CreateSession(t *testing.T) {
	newSession := func(programID string) *domain.Session {
		return &domain.Session{
			ProgramID: programID,
			CourseID:  "c-1",
			TeacherID: "t-1",
			RoomID:    "r-1",
			SlotID:    1,
			Date:      domain.NewDate(2024, time.September, 2),
			StartTime: "08h00",
			EndTime:   "12h00",
		}
	}

	t.Run("success", func(t *testing.T) {
		svc, _, sessions := testScheduleService()
		p, err := svc.CreateProgram(context.Background(), validInfo())
		require.NoError(t, err)

		created, err := svc.CreateSession(context.Background(), newSession(p.ID))
		require.NoError(t, err)
		assert.Equal(t, "sess-1", created.ID)
		assert.Len(t, sessions.byID, 1)
	})

	t.Run("unknown program", func(t *testing.T) {
		svc, _, _ := testScheduleService()
		_, err := svc.CreateSession(context.Background(), newSession("prog-404"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("occupied cell rejected", func(t *testing.T) {
		svc, _, sessions := testScheduleService()
		p, err := svc.CreateProgram(context.Background(), validInfo())
		require.NoError(t, err)

		_, err = svc.CreateSession(context.Background(), newSession(p.ID))
		require.NoError(t, err)

		dup := newSession(p.ID)
		dup.CourseID = "c-2"
		_, err = svc.CreateSession(context.Background(), dup)
		require.ErrorIs(t, err, domain.ErrSlotOccupied)
		assert.Len(t, sessions.byID, 1)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc, _, _ := testScheduleService()
		p, err := svc.CreateProgram(context.Background(), validInfo())
		require.NoError(t, err)

		s := newSession(p.ID)
		s.TeacherID = ""
		s.Date = domain.Date{}
		_, err = svc.CreateSession(context.Background(), s)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestScheduleService_UpdateSession(t *testing.T) {
	svc, _, _ := testScheduleService()
	ctx := context.Background()
	p, err := svc.CreateProgram(ctx, validInfo())
	require.NoError(t, err)

	mk := func(date domain.Date, start, end string) *domain.Session {
		return &domain.Session{
			ProgramID: p.ID, CourseID: "c-1", TeacherID: "t-1", RoomID: "r-1",
			SlotID: 1, Date: date, StartTime: start, EndTime: end,
		}
	}

	first, err := svc.CreateSession(ctx, mk(domain.NewDate(2024, time.September, 2), "08h00", "12h00"))
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, mk(domain.NewDate(2024, time.September, 3), "08h00", "12h00"))
	require.NoError(t, err)

	t.Run("same cell allowed for itself", func(t *testing.T) {
		upd := *first
		upd.RoomID = "r-9"
		got, err := svc.UpdateSession(ctx, &upd)
		require.NoError(t, err)
		assert.Equal(t, "r-9", got.RoomID)
	})

	t.Run("moving onto another session's cell rejected", func(t *testing.T) {
		upd := *second
		upd.Date = first.Date
		_, err := svc.UpdateSession(ctx, &upd)
		require.ErrorIs(t, err, domain.ErrSlotOccupied)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		upd := *first
		upd.ID = "sess-404"
		_, err := svc.UpdateSession(ctx, &upd)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestScheduleService_ListProgramSessions(t *testing.T) {
	svc, _, _ := testScheduleService()
	ctx := context.Background()

	t.Run("unknown program", func(t *testing.T) {
		_, err := svc.ListProgramSessions(ctx, "prog-404")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		p, err := svc.CreateProgram(ctx, validInfo())
		require.NoError(t, err)
		got, err := svc.ListProgramSessions(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestScheduleService_DeleteProgramKeepsSessions(t *testing.T) {
	svc, programs, sessions := testScheduleService()
	ctx := context.Background()
	p, err := svc.CreateProgram(ctx, validInfo())
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, &domain.Session{
		ProgramID: p.ID, CourseID: "c-1", TeacherID: "t-1", RoomID: "r-1",
		SlotID: 1, Date: domain.NewDate(2024, time.September, 2), StartTime: "08h00", EndTime: "12h00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProgram(ctx, p.ID))
	assert.Empty(t, programs.byID)
	assert.Len(t, sessions.byID, 1, "sessions are not cascade-deleted")
}
