package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel_gateway/handler"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/router"
	"hotel_gateway/session"
	"hotel_gateway/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// upstreamStub fakes the remote hotel API. Zero-value statuses mean
// success; call counters let tests assert which remote calls were made.
type upstreamStub struct {
	mu            sync.Mutex
	rooms         map[string]model.Room
	reservations  []model.Reservation
	historyStatus int
	createStatus  int
	cancelStatus  int
	ratingStatus  int
	loginStatus   int

	listCalls   int
	createCalls int
	cancelCalls int
	ratingCalls int
}

func (s *upstreamStub) counts() (list, create, cancel, rating int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls, s.createCalls, s.cancelCalls, s.ratingCalls
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/rooms":
		s.listCalls++
		rooms := make([]model.Room, 0, len(s.rooms))
		for _, room := range s.rooms {
			rooms = append(rooms, room)
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": rooms})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/rooms/"):
		slug := strings.TrimPrefix(r.URL.Path, "/rooms/")
		room, ok := s.rooms[slug]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "room not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": room})

	case r.URL.Path == "/history-reservation":
		if s.historyStatus != 0 {
			writeJSON(w, s.historyStatus, map[string]string{"message": "history unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reservations": s.reservations})

	case r.URL.Path == "/create-reservation":
		s.createCalls++
		if s.createStatus != 0 {
			writeJSON(w, s.createStatus, map[string]string{"message": "rejected"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "created"})

	case strings.HasPrefix(r.URL.Path, "/cancel-reservation/"):
		s.cancelCalls++
		if s.cancelStatus != 0 {
			writeJSON(w, s.cancelStatus, map[string]string{"message": "rejected"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "canceled"})

	case strings.HasPrefix(r.URL.Path, "/create-rating/"):
		s.ratingCalls++
		if s.ratingStatus != 0 {
			writeJSON(w, s.ratingStatus, map[string]string{"message": "rejected"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "rated"})

	case r.URL.Path == "/login":
		if s.loginStatus != 0 {
			writeJSON(w, s.loginStatus, map[string]string{"message": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "upstream-token",
			"user":  model.User{ID: 3, Name: "Alma", Email: "alma@example.com"},
		})

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no such endpoint"})
	}
}

func availableRoom(id uint, roomSlug string) model.Room {
	return model.Room{
		ID:            id,
		RoomName:      "Room " + roomSlug,
		RoomSlug:      roomSlug,
		PricePerNight: 100,
		Status:        "available",
	}
}

func newTestApp(t *testing.T, stub *upstreamStub) (*fiber.App, *session.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	if stub.rooms == nil {
		stub.rooms = map[string]model.Room{}
	}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	api := &upstream.Client{
		BaseURL:    srv.URL,
		StorageURL: "https://cdn.example.com",
		HTTP:       &http.Client{Timeout: 5 * time.Second},
	}
	store := session.NewStore(nil, time.Hour)
	h := handler.New(api, store, helper.NewRoomCache(time.Minute))

	app := fiber.New()
	router.SetupRoutes(app, h, store)
	return app, store
}

// signIn seeds a session directly in the store and returns the id plus a
// bearer token the middleware will accept.
func signIn(t *testing.T, store *session.Store) (string, string) {
	t.Helper()
	sessionID := uuid.NewString()
	require.NoError(t, store.SetSession(context.Background(), sessionID, model.SessionData{
		Token: "upstream-token",
		User:  model.User{ID: 3, Name: "Alma", Email: "alma@example.com"},
	}))
	token, err := helper.GenerateSessionToken(sessionID)
	require.NoError(t, err)
	return sessionID, token
}

func doRequest(t *testing.T, app *fiber.App, method, target, bearer string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload), string(raw))
	return payload
}

func dataOf(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok, "payload has no data object: %v", payload)
	return data
}
