package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func testConfig() *Config {
	cfg := &Config{
		Port:           "4000",
		Environment:    "testing",
		Version:        "test",
		TrustedOrigins: []string{"http://localhost:3000"},
	}
	cfg.JWT = JWTConfig{Secret: "test-secret", Issuer: "BlogAPI", Audience: "BlogAPI", Expiry: time.Hour}
	cfg.Admin = AdminConfig{Username: "admin", Email: "admin@example.com", Password: "adminpass"}

	return cfg
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	t.Helper()

	db := common.TestDB(t)
	return newApplication(testConfig(), newDiscardLogger(), db, common.NopProducer{}), db
}

// request sends payload as JSON, with the token as a bearer credential when it is not empty.
func (ts *testServer) request(t *testing.T, method, path, token string, payload any) (int, http.Header, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		js, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(js)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("could not decode %q: %v", body, err)
	}

	return v
}
