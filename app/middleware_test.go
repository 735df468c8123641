package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

// newUnitApplication builds an application whose services never touch the database.
func newUnitApplication(t *testing.T) (*application, *userservice.TokenManager) {
	t.Helper()

	cfg := testConfig()
	tokens := userservice.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, time.Hour)

	return &application{
		config:      cfg,
		logger:      newDiscardLogger(),
		userService: userservice.NewUserService(nil, tokens, nil),
	}, tokens
}

func TestRecoverPanic(t *testing.T) {
	app, _ := newUnitApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	app.recoverPanic(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app, tokens := newUnitApplication(t)

	userToken, err := tokens.Issue(&userservice.User{ID: 7, Role: userservice.RoleUser})
	require.NoError(t, err)

	other := userservice.NewTokenManager("another-secret", "BlogAPI", "BlogAPI", time.Hour)
	forged, err := other.Issue(&userservice.User{ID: 1, Role: userservice.RoleAdmin})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		header    string
		anonymous bool
		userID    int
	}{
		{name: "no header", header: "", anonymous: true},
		{name: "valid token", header: "Bearer " + userToken, userID: 7},
		{name: "lower case scheme", header: "bearer " + userToken, userID: 7},
		{name: "wrong scheme", header: "Basic " + userToken, anonymous: true},
		{name: "scheme only", header: "Bearer", anonymous: true},
		{name: "garbage token", header: "Bearer garbage", anonymous: true},
		{name: "token signed with another secret", header: "Bearer " + forged, anonymous: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got *userservice.Principal

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = app.contextGetPrincipal(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			res := httptest.NewRecorder()

			app.authenticate(next).ServeHTTP(res, req)

			require.NotNil(t, got)
			assert.Equal(t, tc.anonymous, got.IsAnonymous())
			if !tc.anonymous {
				assert.Equal(t, tc.userID, got.UserID)
			}
			assert.Contains(t, res.Header().Values("Vary"), "Authorization")
		})
	}
}

func TestRequireAuthUserAndAdmin(t *testing.T) {
	app, _ := newUnitApplication(t)

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	testCases := []struct {
		name        string
		principal   *userservice.Principal
		authStatus  int
		adminStatus int
	}{
		{name: "anonymous", principal: userservice.AnonymousPrincipal, authStatus: http.StatusUnauthorized, adminStatus: http.StatusUnauthorized},
		{name: "user", principal: &userservice.Principal{UserID: 2, Role: userservice.RoleUser}, authStatus: http.StatusOK, adminStatus: http.StatusForbidden},
		{name: "admin", principal: &userservice.Principal{UserID: 1, Role: userservice.RoleAdmin}, authStatus: http.StatusOK, adminStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := app.contextSetPrincipal(httptest.NewRequest(http.MethodGet, "/", nil), tc.principal)

			res := httptest.NewRecorder()
			app.requireAuthUser(ok).ServeHTTP(res, req)
			assert.Equal(t, tc.authStatus, res.Code)

			res = httptest.NewRecorder()
			app.requireAdmin(ok).ServeHTTP(res, req)
			assert.Equal(t, tc.adminStatus, res.Code)
		})
	}
}

func TestLogRequest(t *testing.T) {
	app, _ := newUnitApplication(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = contextGetRequestID(r)
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("generates an id", func(t *testing.T) {
		res := httptest.NewRecorder()
		app.logRequest(next).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, res.Code)
		_, err := uuid.Parse(res.Header().Get("X-Request-Id"))
		assert.NoError(t, err)
		assert.Equal(t, res.Header().Get("X-Request-Id"), seen)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", id)

		res := httptest.NewRecorder()
		app.logRequest(next).ServeHTTP(res, req)

		assert.Equal(t, id, res.Header().Get("X-Request-Id"))
	})

	t.Run("replaces an invalid incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")

		res := httptest.NewRecorder()
		app.logRequest(next).ServeHTTP(res, req)

		assert.NotEqual(t, "not-a-uuid", res.Header().Get("X-Request-Id"))
	})
}

func TestEnableCORS(t *testing.T) {
	app, _ := newUnitApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		name           string
		method         string
		origin         string
		preflight      bool
		expectedStatus int
		allowed        bool
	}{
		{name: "trusted origin", method: http.MethodGet, origin: "http://localhost:3000", expectedStatus: http.StatusOK, allowed: true},
		{name: "untrusted origin", method: http.MethodGet, origin: "http://evil.example", expectedStatus: http.StatusOK},
		{name: "trusted preflight", method: http.MethodOptions, origin: "http://localhost:3000", preflight: true, expectedStatus: http.StatusNoContent, allowed: true},
		{name: "untrusted preflight", method: http.MethodOptions, origin: "http://evil.example", preflight: true, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", nil)
			req.Header.Set("Origin", tc.origin)
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}

			res := httptest.NewRecorder()
			app.enableCORS(next).ServeHTTP(res, req)

			assert.Equal(t, tc.expectedStatus, res.Code)
			if tc.allowed {
				assert.Equal(t, tc.origin, res.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
