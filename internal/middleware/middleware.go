package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
)

const ContextUserKey = "user"

// RequireUser 驗證 JWT 並向 user service 取回最新的使用者資料後放入 context。
// token 可放在 Authorization header 或 HTTP-only cookie，
// 即使 token 有效，使用者已被刪除時仍回 401。
func RequireUser(a *auth.Auth, users client.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.TokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			td, err := a.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			user, err := users.GetUserByID(c.Request().Context(), td.UserID)
			if err != nil {
				log.Error().Err(err).Str("user_id", td.UserID).Msg("fetch current user failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireUser 放入 context 的使用者，未設定時回 nil
func CurrentUser(c echo.Context) *client.User {
	user, _ := c.Get(ContextUserKey).(*client.User)
	return user
}
