// File: internal/auth/auth.go
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName 是瀏覽器流程存放 access token 的 cookie 名稱
const CookieName = "access_token"

// Claims 定義 JWT 負載內容
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenData 是令牌驗證通過後取出的身分資訊
type TokenData struct {
	UserID string
	Email  string
}

// Auth 負責簽發、驗證存取令牌與瀏覽器 cookie 的讀寫
type Auth struct {
	secret       []byte
	ttl          time.Duration
	secureCookie bool
}

func New(secret string, ttl time.Duration, secureCookie bool) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl, secureCookie: secureCookie}
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// IssueToken 產生 HS256 JWT，負載只含 sub、email、exp
func (a *Auth) IssueToken(userID, email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(timeNow().Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// VerifyToken 驗證並解析 JWT 令牌
func (a *Auth) VerifyToken(tokenString string) (*TokenData, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return &TokenData{UserID: claims.Subject, Email: claims.Email}, nil
}

// TTL 回傳令牌有效期
func (a *Auth) TTL() time.Duration { return a.ttl }

// TokenFromRequest 先找 Authorization bearer header，再找 cookie。
// header 格式不對時視同沒給，繼續退回 cookie。
func TokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1]
		}
	}
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetCookie 以 HTTP-only cookie 送出令牌，壽命與令牌一致
func (a *Auth) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(a.ttl.Seconds()),
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie 清除瀏覽器端令牌
func (a *Auth) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
