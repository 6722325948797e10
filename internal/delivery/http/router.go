package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ibamconsole/internal/delivery/http/controllers"
	"ibamconsole/internal/delivery/http/middleware"
	"ibamconsole/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Every API route requires a Bearer token; only the swagger UI is open.
func NewRouter(
	schedule *controllers.ScheduleController,
	reference *controllers.ReferenceController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Programs
	mux.HandleFunc("GET /programs", auth(schedule.ListPrograms))
	mux.HandleFunc("POST /programs", auth(schedule.CreateProgram))
	mux.HandleFunc("GET /programs/{programID}", auth(schedule.GetProgram))
	mux.HandleFunc("PUT /programs/{programID}", auth(schedule.UpdateProgram))
	mux.HandleFunc("DELETE /programs/{programID}", auth(schedule.DeleteProgram))

	// Sessions
	mux.HandleFunc("GET /programs/{programID}/sessions", auth(schedule.ListProgramSessions))
	mux.HandleFunc("POST /sessions", auth(schedule.CreateSession))
	mux.HandleFunc("PUT /sessions/{sessionID}", auth(schedule.UpdateSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}", auth(schedule.DeleteSession))

	// Slot catalog
	mux.HandleFunc("GET /slots", auth(schedule.ListSlots))

	// Reference data
	mux.HandleFunc("GET /departments", auth(reference.ListDepartments))
	mux.HandleFunc("POST /departments", auth(reference.CreateDepartment))
	mux.HandleFunc("PUT /departments/{id}", auth(reference.UpdateDepartment))
	mux.HandleFunc("DELETE /departments/{id}", auth(reference.DeleteDepartment))

	mux.HandleFunc("GET /teachers", auth(reference.ListTeachers))
	mux.HandleFunc("POST /teachers", auth(reference.CreateTeacher))
	mux.HandleFunc("PUT /teachers/{id}", auth(reference.UpdateTeacher))
	mux.HandleFunc("DELETE /teachers/{id}", auth(reference.DeleteTeacher))

	mux.HandleFunc("GET /delegates", auth(reference.ListDelegates))
	mux.HandleFunc("POST /delegates", auth(reference.CreateDelegate))
	mux.HandleFunc("PUT /delegates/{id}", auth(reference.UpdateDelegate))
	mux.HandleFunc("DELETE /delegates/{id}", auth(reference.DeleteDelegate))

	mux.HandleFunc("GET /courses", auth(reference.ListCourses))
	mux.HandleFunc("POST /courses", auth(reference.CreateCourse))
	mux.HandleFunc("PUT /courses/{id}", auth(reference.UpdateCourse))
	mux.HandleFunc("DELETE /courses/{id}", auth(reference.DeleteCourse))

	mux.HandleFunc("GET /subjects", auth(reference.ListSubjects))
	mux.HandleFunc("POST /subjects", auth(reference.CreateSubject))
	mux.HandleFunc("PUT /subjects/{id}", auth(reference.UpdateSubject))
	mux.HandleFunc("DELETE /subjects/{id}", auth(reference.DeleteSubject))

	mux.HandleFunc("GET /rooms", auth(reference.ListRooms))
	mux.HandleFunc("POST /rooms", auth(reference.CreateRoom))
	mux.HandleFunc("PUT /rooms/{id}", auth(reference.UpdateRoom))
	mux.HandleFunc("DELETE /rooms/{id}", auth(reference.DeleteRoom))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
