package saucetest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAndOverrides(t *testing.T) {
	srv := New()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rest/v1/jdoe/tunnels", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[]`, rec.Body.String())
	assert.Equal(t, "/rest/v1/{user}/tunnels", srv.Last().Route)

	srv.Respond(http.MethodGet, "/rest/v1/{user}/tunnels", http.StatusUnauthorized, `{"message":"no"}`)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rest/v1/jdoe/tunnels", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rest/v1/users/jdoe", nil))
	assert.Equal(t, "/rest/v1/users/{user}", srv.Last().Route, "static segments win over parameters")
}

func TestRecordsRequests(t *testing.T) {
	srv := New()
	ts := srv.Start()
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/rest/v1/storage/jdoe/app.zip?overwrite=true", strings.NewReader("PK"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Basic abc")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/nowhere")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	got := srv.Requests()
	require.Len(t, got, 2)
	assert.Equal(t, Recorded{
		Method:        http.MethodPost,
		Path:          "/rest/v1/storage/jdoe/app.zip",
		RawQuery:      "overwrite=true",
		RequestURI:    "/rest/v1/storage/jdoe/app.zip?overwrite=true",
		ContentType:   "application/octet-stream",
		Authorization: "Basic abc",
		Body:          []byte("PK"),
		Route:         "/rest/v1/storage/{user}/{file}",
	}, got[0])
	assert.Equal(t, "", got[1].Route)
	assert.Equal(t, "/nowhere", got[1].Path)
}
