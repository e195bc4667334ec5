package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeSystem(t *testing.T, classifyReply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/citizen/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "password123" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Invalid password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Citizen logged in successfully"}`))
	})
	mux.HandleFunc("/api/auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Admin logged in successfully"}`))
	})
	mux.HandleFunc("/api/getAllFIRs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/classify", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(classifyReply))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"AI service is running","api_key_configured":true}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func defaultOptions(url string) Options {
	return Options{
		BackendURL: url,
		FIRURL:     url,
		RelayURL:   url,
		Citizen:    Credentials{Email: "user@example.com", Password: "password123"},
		Admin:      Credentials{Email: "admin@justice.gov.in", Password: "admin123"},
	}
}

func TestRunAllPass(t *testing.T) {
	srv := newFakeSystem(t, `{"priority":"high"}`)
	var out bytes.Buffer

	report := NewRunner(time.Second, &out).Run(context.Background(), Checks(defaultOptions(srv.URL)))

	assert.True(t, report.OK())
	assert.Equal(t, 6, report.Run)
	assert.Equal(t, 6, report.Passed)
	assert.Contains(t, out.String(), "Tests passed: 6/6")
}

func TestRunCountsFailures(t *testing.T) {
	srv := newFakeSystem(t, `{"priority":"urgent"}`)
	opts := defaultOptions(srv.URL)
	opts.Citizen.Password = "wrong"
	var out bytes.Buffer

	report := NewRunner(time.Second, &out).Run(context.Background(), Checks(opts))

	assert.False(t, report.OK())
	assert.Equal(t, 6, report.Run)
	assert.Equal(t, 4, report.Passed)
	require.Len(t, report.Results, 6)
	assert.Equal(t, http.StatusBadRequest, report.Results[0].StatusCode)
	assert.False(t, report.Results[5].Passed)
	assert.Error(t, report.Results[5].Err)
}

func TestRunUnreachable(t *testing.T) {
	var out bytes.Buffer
	checks := []Check{{Name: "Down", Method: http.MethodGet, URL: "http://127.0.0.1:1/", ExpectedStatus: http.StatusOK}}

	report := NewRunner(time.Second, &out).Run(context.Background(), checks)

	assert.Equal(t, 1, report.Run)
	assert.Zero(t, report.Passed)
	assert.Error(t, report.Results[0].Err)
}

func TestChecksSkip(t *testing.T) {
	opts := defaultOptions("http://localhost:5000/")
	opts.SkipFIR = true
	opts.SkipRelay = true

	checks := Checks(opts)
	require.Len(t, checks, 2)
	assert.Equal(t, "http://localhost:5000/api/auth/citizen/login", checks[0].URL)
	assert.Equal(t, "http://localhost:5000/api/auth/admin/login", checks[1].URL)
}
