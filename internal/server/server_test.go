package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/chat"
	"github.com/maya/wellspring/internal/db"
	"github.com/maya/wellspring/internal/recommend"
	"github.com/maya/wellspring/internal/server/middleware"
)

// mockCheckInStore is an in-memory CheckInStore for handler tests.
type mockCheckInStore struct {
	mu       sync.Mutex
	checkIns map[uuid.UUID]*db.CheckIn
}

func newMockCheckInStore() *mockCheckInStore {
	return &mockCheckInStore{checkIns: make(map[uuid.UUID]*db.CheckIn)}
}

func (m *mockCheckInStore) CreateCheckIn(_ context.Context, c *db.CheckIn) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *c
	stored.ID = uuid.New()
	m.checkIns[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockCheckInStore) GetCheckIn(_ context.Context, id uuid.UUID) (*db.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checkIns[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *mockCheckInStore) ListCheckIns(_ context.Context, userID uuid.UUID, limit int) ([]db.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.CheckIn
	for _, c := range m.checkIns {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockCheckInStore) DeleteCheckIn(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.checkIns, id)
	return nil
}

// newTestServer builds a server with an in-memory store and no external
// dependencies. Chat runs in fallback mode.
func newTestServer() *Server {
	return &Server{
		engine:      recommend.NewEngine(catalog.MustLoad()),
		chatService: chat.NewService(nil),
		checkIns:    newMockCheckInStore(),
	}
}

// withAuthUser returns the request carrying userID in its context the way the
// auth middleware would.
func withAuthUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
	return req.WithContext(ctx)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestErrorResponse(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.errorResponse(w, http.StatusBadRequest, "something went wrong")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "something went wrong", resp["error"])
}

func TestWithCORS_Preflight(t *testing.T) {
	s := newTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/recommendations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
