package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ibamconsole/internal/domain"
)

// Session holds the bearer token of an authenticated console user. The token
// is issued by the identity service; the client only carries it and can tell
// when it has expired.
type Session struct {
	Token string
}

// Valid reports whether the session carries a token whose expiry, if present,
// has not passed. The signature is not checked here; that is the server's job.
func (s *Session) Valid() bool {
	if s == nil || s.Token == "" {
		return false
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.After(time.Now())
}

// Client is the HTTP implementation of domain.ScheduleAPI, talking to the
// console backend. Server rejections come back as *domain.RemoteError carrying
// the server's message; a 404 is domain.ErrNotFound.
type Client struct {
	baseURL string
	session *Session
	client  *http.Client
}

// NewClient returns a Client for the backend at baseURL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(baseURL string, session *Session, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: session,
		client:  httpClient,
	}
}

// envelope mirrors the server's response envelope.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one round trip and decodes the envelope's data into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewBuffer(buf)
	} else {
		reader = &bytes.Buffer{}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.RemoteError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode < 400 {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrNotFound
		}
		message := http.StatusText(resp.StatusCode)
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		return &domain.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	var out []*domain.Department
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	var out []*domain.Teacher
	if err := c.do(ctx, http.MethodGet, "/teachers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	var out []*domain.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	var out []*domain.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPrograms(ctx context.Context) ([]*domain.Program, error) {
	var out []*domain.Program
	if err := c.do(ctx, http.MethodGet, "/programs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	out := &domain.Program{}
	if err := c.do(ctx, http.MethodGet, "/programs/"+id, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProgram(ctx context.Context, info domain.ProgramInfo) (*domain.Program, error) {
	out := &domain.Program{}
	if err := c.do(ctx, http.MethodPost, "/programs", info, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateProgram(ctx context.Context, id string, info domain.ProgramInfo) (*domain.Program, error) {
	out := &domain.Program{}
	if err := c.do(ctx, http.MethodPut, "/programs/"+id, info, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteProgram(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/programs/"+id, nil, nil)
}

func (c *Client) GetProgramSessions(ctx context.Context, programID string) ([]*domain.Session, error) {
	var out []*domain.Session
	if err := c.do(ctx, http.MethodGet, "/programs/"+programID+"/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// sessionPayload is the wire shape the server accepts for session writes.
// The server rejects unknown fields, so the read-only id and created_at of
// domain.Session must not be sent.
type sessionPayload struct {
	ProgramID string      `json:"program_id"`
	CourseID  string      `json:"course_id"`
	TeacherID string      `json:"teacher_id"`
	RoomID    string      `json:"room_id"`
	SlotID    int         `json:"slot_id"`
	Date      domain.Date `json:"date"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
}

func payloadOf(s *domain.Session) sessionPayload {
	return sessionPayload{
		ProgramID: s.ProgramID,
		CourseID:  s.CourseID,
		TeacherID: s.TeacherID,
		RoomID:    s.RoomID,
		SlotID:    s.SlotID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (c *Client) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	out := &domain.Session{}
	if err := c.do(ctx, http.MethodPost, "/sessions", payloadOf(session), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	out := &domain.Session{}
	if err := c.do(ctx, http.MethodPut, "/sessions/"+session.ID, payloadOf(session), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/"+id, nil, nil)
}
