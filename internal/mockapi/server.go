// Package mockapi provides an in-process fake of the Modrinth v2 API for tests.
//
// Routes are registered per test with [Server.Handle] or the JSON helpers.
// Every response carries the rate-limit headers set with [Server.SetRateLimit],
// and every request is recorded for later assertions.
package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Prefix is the path the fake API is mounted under.
const Prefix = "/v2"

// Recorded is a request received by the server.
type Recorded struct {
	Method   string
	Path     string // Escaped path, as sent on the wire
	Pattern  string // Matched chi route pattern
	RawQuery string
	Header   http.Header
	Body     []byte
}

type recordKey struct{}

// RateLimit holds the rate-limit header values sent on every response.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     int // Seconds
}

// Server is a chi-routed httptest server.
type Server struct {
	*httptest.Server

	root   *chi.Mux
	api    chi.Router
	mu     sync.Mutex
	limit  *RateLimit
	record []Recorded
}

// New starts a server that is closed when the test finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{root: chi.NewRouter()}
	s.root.Use(s.recordRequest)
	s.root.Use(s.rateLimitHeaders)
	s.root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "not_found", "the requested route does not exist")
	})
	s.root.Route(Prefix, func(r chi.Router) {
		s.api = r
	})

	s.Server = httptest.NewServer(s.root)
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API root clients should be pointed at.
func (s *Server) BaseURL() string {
	return s.URL + Prefix + "/"
}

// Handle registers h for method and a chi pattern relative to the API root
// (e.g. "/project/{id}"). Register routes before issuing requests.
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	s.api.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if i, ok := r.Context().Value(recordKey{}).(int); ok {
			if rc := chi.RouteContext(r.Context()); rc != nil {
				s.mu.Lock()
				s.record[i].Pattern = rc.RoutePattern()
				s.mu.Unlock()
			}
		}
		h(w, r)
	}))
}

// JSON registers a route that always responds with status and v encoded as JSON.
func (s *Server) JSON(method, pattern string, status int, v any) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, v)
	})
}

// Raw registers a route that always responds with status and body verbatim.
func (s *Server) Raw(method, pattern string, status int, body []byte) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	})
}

// SetRateLimit makes every subsequent response carry the given rate-limit headers.
func (s *Server) SetRateLimit(limit, remaining, reset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = &RateLimit{Limit: limit, Remaining: remaining, Reset: reset}
}

// ClearRateLimit stops sending rate-limit headers.
func (s *Server) ClearRateLimit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = nil
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.record...)
}

// Last returns the most recent request, or false if none was received.
func (s *Server) Last() (Recorded, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.record) == 0 {
		return Recorded{}, false
	}
	return s.record[len(s.record)-1], true
}

// recordRequest stores the request before it is dispatched, so a client that
// has read the response always finds it in Requests.
func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.record = append(s.record, Recorded{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		i := len(s.record) - 1
		s.mu.Unlock()

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), recordKey{}, i)))
	})
}

func (s *Server) rateLimitHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		limit := s.limit
		s.mu.Unlock()
		if limit != nil {
			h := w.Header()
			h.Set("X-Ratelimit-Limit", strconv.Itoa(limit.Limit))
			h.Set("X-Ratelimit-Remaining", strconv.Itoa(limit.Remaining))
			h.Set("X-Ratelimit-Reset", strconv.Itoa(limit.Reset))
		}
		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes the error body the remote service returns on 4xx responses.
func WriteError(w http.ResponseWriter, status int, reason, description string) {
	WriteJSON(w, status, map[string]string{"error": reason, "description": description})
}

// Fixture reads testdata/<name> relative to the calling test's package.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}
