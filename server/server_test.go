package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatter struct {
	reply      string
	gotUserID  string
	gotMessage string
}

func (s *stubChatter) Chat(_ context.Context, userID, message string) string {
	s.gotUserID = userID
	s.gotMessage = message
	return s.reply
}

func postChat(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	stub := &stubChatter{reply: "Lisbon sounds great."}
	srv := New(stub)

	rec := postChat(t, srv, `{"user_id":"alice","message":"plan a trip"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	assert.Equal(t, "Lisbon sounds great.", resp.Response)
	assert.Equal(t, "alice", stub.gotUserID)
	assert.Equal(t, "plan a trip", stub.gotMessage)
}

func TestChatEndpoint_ErrorNarrationStays200(t *testing.T) {
	srv := New(&stubChatter{reply: "Sorry, I encountered an error: upstream down"})
	rec := postChat(t, srv, `{"user_id":"alice","message":"hi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sorry, I encountered an error")
}

func TestChatEndpoint_MalformedJSON(t *testing.T) {
	rec := postChat(t, New(&stubChatter{}), `{"user_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpoint_MissingFields(t *testing.T) {
	srv := New(&stubChatter{})
	assert.Equal(t, http.StatusBadRequest, postChat(t, srv, `{"user_id":"alice"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postChat(t, srv, `{"message":"hi"}`).Code)
}

func TestChatEndpoint_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	New(&stubChatter{}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	New(&stubChatter{}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "wayfarer_test_total", Help: "test"})
	require.NoError(t, reg.Register(counter))
	counter.Inc()

	srv := New(&stubChatter{}, func(o *Options) { o.Gatherer = reg })
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wayfarer_test_total 1")
}
