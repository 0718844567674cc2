package middleware

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytickets/tinytickets/internal/infrastructure/auth"
	"github.com/tinytickets/tinytickets/internal/infrastructure/permission"
	"github.com/tinytickets/tinytickets/internal/shared/authorization"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedEngine(t *testing.T) (*gin.Engine, auth.Secrets) {
	t.Helper()
	secrets, err := auth.NewSecrets("root-secret", "staff-secret")
	require.NoError(t, err)
	enforcer, err := permission.NewTierEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	m := NewAuthMiddleware(auth.NewTokenAuthenticator(secrets), enforcer, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/user", m.RequireTier(authorization.TierUser), func(c *gin.Context) {
		c.String(http.StatusOK, authorization.TierFromContext(c).String())
	})
	engine.GET("/admin", m.RequireTier(authorization.TierAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, authorization.TierFromContext(c).String())
	})
	return engine, secrets
}

func TestAuthMiddleware_RequireTier(t *testing.T) {
	engine, secrets := newGuardedEngine(t)

	tests := []struct {
		name       string
		path       string
		token      *string
		wantStatus int
		wantBody   string
	}{
		{name: "user route without header", path: "/user", wantStatus: http.StatusUnauthorized, wantBody: "`X-TOKEN` header is missing"},
		{name: "user route with corrupted header", path: "/user", token: ptr("abc\x01"), wantStatus: http.StatusUnauthorized, wantBody: "`X-TOKEN` header is corrupted"},
		{name: "user route with wrong token", path: "/user", token: ptr("$USER$nope"), wantStatus: http.StatusForbidden, wantBody: "access denied"},
		{name: "user route with user token", path: "/user", token: ptr(secrets.UserToken()), wantStatus: http.StatusOK, wantBody: "user"},
		{name: "user route with admin token", path: "/user", token: ptr(secrets.AdminToken()), wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "admin route with user token", path: "/admin", token: ptr(secrets.UserToken()), wantStatus: http.StatusForbidden, wantBody: "access denied"},
		{name: "admin route with admin token", path: "/admin", token: ptr(secrets.AdminToken()), wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "raw secret without prefix", path: "/user", token: ptr("staff-secret"), wantStatus: http.StatusForbidden, wantBody: "access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != nil {
				req.Header.Set("X-TOKEN", *tt.token)
			}
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		permissive  bool
		method      string
		wantStatus  int
		wantAllowed string
	}{
		{name: "preflight permissive", permissive: true, method: http.MethodOptions, wantStatus: http.StatusNoContent, wantAllowed: "http://localhost:5173"},
		{name: "preflight strict", permissive: false, method: http.MethodOptions, wantStatus: http.StatusNoContent},
		{name: "simple request permissive", permissive: true, method: http.MethodGet, wantStatus: http.StatusOK, wantAllowed: "http://localhost:5173"},
		{name: "simple request strict", permissive: false, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(CORS(tt.permissive))
			engine.GET("/api/app-title", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.method, "/api/app-title", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRecovery_MasksToken(t *testing.T) {
	headers := redactTokenHeader([]byte("GET / HTTP/1.1\r\nHost: example\r\nX-Token: $ADMIN$secret\r\n\r\n"))
	assert.Contains(t, headers, "X-Token: "+logger.Redacted)
	for _, h := range headers {
		assert.NotContains(t, h, "secret")
	}

	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestIsClientGone(t *testing.T) {
	assert.True(t, isClientGone(syscall.EPIPE))
	assert.True(t, isClientGone(&net.OpError{Op: "write", Err: os.NewSyscallError("write", syscall.ECONNRESET)}))
	assert.False(t, isClientGone("boom"))
	assert.False(t, isClientGone(errors.New("boom")))
}

func ptr(s string) *string {
	return &s
}
