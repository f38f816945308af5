// File: internal/auth/auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func newCtx(header, cookie string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestIssueAndVerifyToken(t *testing.T) {
	a := New("secret", 30*time.Minute, false)

	tok, err := a.IssueToken("u-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	data, err := a.VerifyToken(tok)
	require.NoError(t, err)
	require.Equal(t, "u-1", data.UserID)
	require.Equal(t, "alice@example.com", data.Email)
}

func TestVerifyTokenRejections(t *testing.T) {
	t.Cleanup(restore)
	a := New("secret", 30*time.Minute, false)

	t.Run("garbage", func(t *testing.T) {
		_, err := a.VerifyToken("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New("other-secret", 30*time.Minute, false)
		tok, err := other.IssueToken("u-1", "alice@example.com")
		require.NoError(t, err)
		_, err = a.VerifyToken(tok)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		tok, err := a.IssueToken("u-1", "alice@example.com")
		require.NoError(t, err)
		restore()
		_, err = a.VerifyToken(tok)
		require.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = a.VerifyToken(tok)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := a.IssueToken("", "alice@example.com")
		require.NoError(t, err)
		_, err = a.VerifyToken(tok)
		require.ErrorContains(t, err, "token missing subject")
	})

	t.Run("parsed but invalid", func(t *testing.T) {
		t.Cleanup(restore)
		parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
			return &jwt.Token{Valid: false, Claims: &Claims{}}, nil
		}
		_, err := a.VerifyToken("whatever")
		require.ErrorContains(t, err, "invalid token")
	})
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		require.Equal(t, "tok-1", TokenFromRequest(newCtx("Bearer tok-1", "")))
	})

	t.Run("case insensitive scheme", func(t *testing.T) {
		require.Equal(t, "tok-2", TokenFromRequest(newCtx("bearer tok-2", "")))
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		require.Equal(t, "from-header", TokenFromRequest(newCtx("Bearer from-header", "from-cookie")))
	})

	t.Run("malformed header falls back to cookie", func(t *testing.T) {
		require.Equal(t, "from-cookie", TokenFromRequest(newCtx("Token abc", "from-cookie")))
	})

	t.Run("cookie only", func(t *testing.T) {
		require.Equal(t, "from-cookie", TokenFromRequest(newCtx("", "from-cookie")))
	})

	t.Run("nothing", func(t *testing.T) {
		require.Empty(t, TokenFromRequest(newCtx("", "")))
	})
}

func TestCookieLifecycle(t *testing.T) {
	issue := func(a *Auth) *http.Cookie {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		a.SetCookie(c, "tok")
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		return cookies[0]
	}

	t.Run("set", func(t *testing.T) {
		ck := issue(New("secret", 30*time.Minute, false))
		require.Equal(t, CookieName, ck.Name)
		require.Equal(t, "tok", ck.Value)
		require.Equal(t, 1800, ck.MaxAge)
		require.Equal(t, "/", ck.Path)
		require.True(t, ck.HttpOnly)
		require.False(t, ck.Secure)
		require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	})

	t.Run("secure in production", func(t *testing.T) {
		ck := issue(New("secret", 30*time.Minute, true))
		require.True(t, ck.Secure)
	})

	t.Run("clear", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		New("secret", 30*time.Minute, false).ClearCookie(c)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Empty(t, cookies[0].Value)
		require.Equal(t, -1, cookies[0].MaxAge)
		require.True(t, cookies[0].HttpOnly)
	})
}
