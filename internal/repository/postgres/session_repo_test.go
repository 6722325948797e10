package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"ibamconsole/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCols = []string{"id", "program_id", "course_id", "teacher_id", "room_id", "slot_id", "date", "start_time", "end_time", "created_at"}

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	date := domain.NewDate(2024, time.September, 2)
	createdAt := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	session := func() *domain.Session {
		return &domain.Session{
			ProgramID: "prog-1",
			CourseID:  "course-1",
			TeacherID: "teacher-1",
			RoomID:    "room-1",
			SlotID:    1,
			Date:      date,
			StartTime: "08h00",
			EndTime:   "12h00",
			CreatedAt: createdAt,
		}
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO sessions`).
			WithArgs("prog-1", "course-1", "teacher-1", "room-1", 1, date, "08h00", "12h00", createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sess-uuid-1"))

		repo := NewSessionRepository(db)
		s := session()
		require.NoError(t, repo.Create(ctx, s))
		assert.Equal(t, "sess-uuid-1", s.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to slot occupied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO sessions`).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := NewSessionRepository(db)
		err = repo.Create(ctx, session())
		require.ErrorIs(t, err, domain.ErrSlotOccupied)
	})
}

func TestSessionRepository_FindByCell(t *testing.T) {
	ctx := context.Background()
	date := domain.NewDate(2024, time.September, 2)

	t.Run("hit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM sessions`).
			WithArgs("prog-1", date, "08h00", "12h00").
			WillReturnRows(sqlmock.NewRows(sessionCols).
				AddRow("sess-uuid-1", "prog-1", "course-1", "teacher-1", "room-1", 1,
					time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), "08h00", "12h00",
					time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)))

		repo := NewSessionRepository(db)
		s, err := repo.FindByCell(ctx, "prog-1", date, "08h00", "12h00")
		require.NoError(t, err)
		assert.Equal(t, "sess-uuid-1", s.ID)
		assert.Equal(t, "2024-09-02", s.Date.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM sessions`).
			WillReturnError(sql.ErrNoRows)

		repo := NewSessionRepository(db)
		_, err = repo.FindByCell(ctx, "prog-1", date, "14h00", "18h00")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_Update(t *testing.T) {
	ctx := context.Background()
	date := domain.NewDate(2024, time.September, 4)

	t.Run("unknown id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE sessions`).
			WillReturnError(sql.ErrNoRows)

		repo := NewSessionRepository(db)
		_, err = repo.Update(ctx, &domain.Session{ID: "sess-404", Date: date, StartTime: "08h00", EndTime: "12h00"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("move onto occupied cell", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE sessions`).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := NewSessionRepository(db)
		_, err = repo.Update(ctx, &domain.Session{ID: "sess-uuid-1", Date: date, StartTime: "08h00", EndTime: "12h00"})
		require.ErrorIs(t, err, domain.ErrSlotOccupied)
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM sessions`).
		WithArgs("sess-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSessionRepository(db)
	require.ErrorIs(t, repo.Delete(ctx, "sess-404"), domain.ErrNotFound)
}
