// Package saucetest provides an in-process fake of the Sauce Labs REST API.
// It records every request and answers with canned bodies that tests can
// override per route.
package saucetest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Recorded is a request as seen by the fake server.
type Recorded struct {
	Method        string
	Path          string
	RawQuery      string
	RequestURI    string
	ContentType   string
	Authorization string
	Body          []byte
	Route         string
}

type canned struct {
	status int
	body   string
}

// Server is an http.Handler serving the API routes.
type Server struct {
	router chi.Router

	mu        sync.Mutex
	requests  []Recorded
	responses map[string]canned
}

type route struct {
	method  string
	pattern string
	body    string
}

// routes lists every endpoint with a default body of the shape the service returns.
var routes = []route{
	{http.MethodGet, "/rest/v1/users/{user}", `{}`},
	{http.MethodPost, "/rest/v1/users/{user}", `{}`},
	{http.MethodGet, "/rest/v1.1/users/{user}/concurrency", `{}`},
	{http.MethodGet, "/rest/v1/users/{user}/list-subaccounts", `{}`},
	{http.MethodGet, "/rest/v1.1/users/{user}/siblings", `[]`},
	{http.MethodGet, "/rest/v1/users/{user}/subaccounts", `[]`},
	{http.MethodPost, "/rest/v1/users/{user}/accesskey/change", `{}`},
	{http.MethodGet, "/rest/v1/{user}/activity", `{}`},
	{http.MethodGet, "/rest/v1/users/{user}/usage", `{}`},

	{http.MethodGet, "/rest/v1/info/status", `{}`},
	{http.MethodGet, "/rest/v1/info/platforms/appium/eol", `{}`},
	{http.MethodGet, "/rest/v1/info/platforms/{api}", `[]`},

	{http.MethodPost, "/rest/v1/{user}/js-tests", `{}`},
	{http.MethodPost, "/rest/v1/{user}/js-tests/status", `{}`},

	{http.MethodGet, "/rest/v1/{user}/jobs", `[]`},
	{http.MethodGet, "/rest/v1/{user}/jobs/{job}", `{}`},
	{http.MethodPut, "/rest/v1/{user}/jobs/{job}", `{}`},
	{http.MethodDelete, "/rest/v1/{user}/jobs/{job}", `{}`},
	{http.MethodPut, "/rest/v1/{user}/jobs/{job}/stop", `{}`},
	{http.MethodGet, "/rest/v1/{user}/jobs/{job}/assets", `{}`},
	{http.MethodDelete, "/rest/v1/{user}/jobs/{job}/assets", `[]`},

	{http.MethodPost, "/rest/v1/storage/{user}/{file}", `{}`},
	{http.MethodGet, "/rest/v1/storage/{user}", `{}`},

	{http.MethodGet, "/rest/v1/{user}/tunnels", `[]`},
	{http.MethodGet, "/rest/v1/{user}/tunnels/{tunnel}", `{}`},
	{http.MethodDelete, "/rest/v1/{user}/tunnels/{tunnel}", `{}`},

	{http.MethodGet, "/rest/v1/analytics/trends/tests", `{}`},
	{http.MethodGet, "/rest/v1/analytics/trends/errors", `{}`},
	{http.MethodGet, "/rest/v1/analytics/trends/builds_tests", `{}`},
	{http.MethodGet, "/rest/v1/analytics/tests", `{}`},
	{http.MethodGet, "/rest/v1/analytics/insights/concurrency", `{}`},
}

// New returns a fake server with the default responses.
func New() *Server {
	s := &Server{
		router:    chi.NewRouter(),
		responses: map[string]canned{},
	}
	for _, rt := range routes {
		s.responses[key(rt.method, rt.pattern)] = canned{status: http.StatusOK, body: rt.body}
		s.router.Method(rt.method, rt.pattern, http.HandlerFunc(s.serve))
	}
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.record(r, "")
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	return s
}

// Respond overrides the response of one route, given by its pattern as listed
// in routes (e.g. "/rest/v1/{user}/jobs").
func (s *Server) Respond(method, pattern string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[key(method, pattern)] = canned{status: status, body: body}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves the fake on a local listener. Close the returned server when done.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s)
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request, or the zero value if there was none.
func (s *Server) Last() Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	pattern := chi.RouteContext(r.Context()).RoutePattern()
	s.record(r, pattern)

	s.mu.Lock()
	resp, ok := s.responses[key(r.Method, pattern)]
	s.mu.Unlock()
	if !ok {
		resp = canned{status: http.StatusOK, body: `{}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (s *Server) record(r *http.Request, pattern string) {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Recorded{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		RequestURI:    r.URL.RequestURI(),
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
		Route:         pattern,
	})
}

func key(method, pattern string) string {
	return method + " " + pattern
}
