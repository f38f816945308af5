package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &client.Fake{}, auth.New("secret", time.Minute, false))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /health",
		http.MethodPost + " /auth/register",
		http.MethodPost + " /auth/login",
		http.MethodPost + " /auth/login/json",
		http.MethodPost + " /auth/browser/register",
		http.MethodPost + " /auth/browser/login",
		http.MethodPost + " /auth/browser/logout",
		http.MethodGet + " /auth/me",
		http.MethodPut + " /auth/me",
		http.MethodDelete + " /auth/me",
		http.MethodGet + " /users/",
		http.MethodGet + " /users/:id",
		http.MethodGet + " /users/email/:email",
		http.MethodPut + " /users/:id",
		http.MethodDelete + " /users/:id",
	}

	// Group 中介層會額外註冊 catch-all 路由，這裡只確認預期的路由都存在
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	e := echo.New()
	Setup(e, &client.Fake{}, auth.New("secret", time.Minute, false))

	for _, target := range []string{"/auth/me", "/users/", "/users/u-1"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "expected 401 for %s", target)
		require.Contains(t, rec.Body.String(), "Not authenticated")
	}

	// 公開路由不需要 token
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
