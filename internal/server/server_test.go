package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lufiasha/botdiscord/internal/domain"
	"github.com/lufiasha/botdiscord/internal/game"
)

type stubPool struct{}

func (stubPool) Ping(ctx context.Context) error { return nil }
func (stubPool) Close()                         {}

type stubGame struct{ msg string }

func (s stubGame) Handle(ctx context.Context, cmd game.Command) (string, error) { return s.msg, nil }
func (s stubGame) Status(ctx context.Context, userID, username string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Hunt(ctx context.Context, userID, username string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Boss(ctx context.Context, userID, username string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Meditate(ctx context.Context, userID, username string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Equip(ctx context.Context, userID, username, itemName string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Open(ctx context.Context, userID, username string) (string, error) {
	return s.msg, nil
}
func (s stubGame) Leaderboard(ctx context.Context) (string, error) { return s.msg, nil }
func (s stubGame) TopPlayers(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}
func (s stubGame) Inventory(ctx context.Context, userID string) ([]game.InventoryEntry, error) {
	return nil, nil
}

func newTestServer() *Server {
	key := make([]byte, 32)
	return NewServer(0, key, stubPool{}, stubGame{msg: "ok"})
}

func TestRoutes(t *testing.T) {
	srv := newTestServer()
	router := srv.httpServer.Handler

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"command wrong method", http.MethodGet, "/api/v1/command", http.StatusMethodNotAllowed},
		{"leaderboard", http.MethodGet, "/api/v1/leaderboard", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
		{"interactions unsigned", http.MethodPost, "/interactions", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCommandRoute(t *testing.T) {
	srv := newTestServer()
	router := srv.httpServer.Handler

	body := `{"command":"status","user_id":"u1","username":"Лу"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"ok"`)
}

func TestRequestSizeLimit(t *testing.T) {
	srv := newTestServer()
	router := srv.httpServer.Handler

	huge := `{"command":"status","user_id":"u1","username":"` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command", bytes.NewBufferString(huge))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
