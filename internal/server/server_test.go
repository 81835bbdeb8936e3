package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
)

type fakeStore struct {
	entries []history.Entry
	fail    bool
}

func (f *fakeStore) Record(expression string, result float64) (*history.Entry, error) {
	if f.fail {
		return nil, errors.New("store closed")
	}
	e := history.Entry{
		ID:         "fixed-id",
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	f.entries = append(f.entries, e)
	return &e, nil
}

func (f *fakeStore) Recent(limit int) ([]history.Entry, error) {
	if f.fail {
		return nil, errors.New("store closed")
	}
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func newTestServer(store History) *Server {
	return New(&Config{Port: "0", CorsOrigins: []string{"*"}}, store, OkHealthChecker{})
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateEndpoint(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(store)

	rec := do(s, http.MethodPost, "/api/v1/evaluate", `{"expression": "1 + 2 * 3"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expression": "1 + 2 * 3", "result": 7}`, rec.Body.String())
	require.Len(t, store.entries, 1)
	assert.Equal(t, "1 + 2 * 3", store.entries[0].Expression)
}

func TestEvaluateEndpointErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
		want string
	}{
		{"malformed", `{"expression": "5 +"}`, http.StatusBadRequest, "invalid expression"},
		{"invalid number", `{"expression": "5.5 + 3"}`, http.StatusBadRequest, "invalid number"},
		{"invalid operator", `{"expression": "5 @ 3"}`, http.StatusBadRequest, "invalid operator"},
		{"empty", `{"expression": "  "}`, http.StatusBadRequest, "empty expression"},
		{"division by zero", `{"expression": "5 / 0"}`, http.StatusUnprocessableEntity, "division by zero"},
		{"bad json", `{`, http.StatusBadRequest, "invalid request body"},
	}
	s := newTestServer(nil)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := do(s, http.MethodPost, "/api/v1/evaluate", c.body)
			assert.Equal(t, c.code, rec.Code)
			assert.Contains(t, rec.Body.String(), c.want)
		})
	}
}

func TestEvaluateRecordFailureStillSucceeds(t *testing.T) {
	s := newTestServer(&fakeStore{fail: true})

	rec := do(s, http.MethodPost, "/api/v1/evaluate", `{"expression": "7 / 2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expression": "7 / 2", "result": 3.5}`, rec.Body.String())
}

func TestHistoryEndpoint(t *testing.T) {
	store := &fakeStore{}
	_, err := store.Record("1 + 2", 3)
	require.NoError(t, err)
	s := newTestServer(store)

	rec := do(s, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expression":"1 + 2"`)

	rec = do(s, http.MethodGet, "/api/v1/history?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodGet, "/api/v1/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryEndpointWithoutStore(t *testing.T) {
	s := newTestServer(nil)

	rec := do(s, http.MethodGet, "/api/v1/history", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries": []}`, rec.Body.String())
}

func TestStartReturnsStartupError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	s := New(&Config{Port: port, CorsOrigins: []string{"*"}}, nil, OkHealthChecker{})

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return on a bound port")
	}
}

type downHealthChecker struct{}

func (downHealthChecker) Healthy(context.Context) bool { return false }

func TestHealthz(t *testing.T) {
	s := newTestServer(nil)
	rec := do(s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	s = New(&Config{Port: "0", CorsOrigins: []string{"*"}}, nil, downHealthChecker{})
	rec = do(s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status": "unavailable"}`, rec.Body.String())
}
