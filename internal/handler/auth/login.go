// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/zstrangeway/ai-scaffold/internal/api"
	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
)

// authenticate 以 Email 與密碼向 user service 驗證，查不到或密碼錯誤回 nil
func authenticate(c echo.Context, users client.Client, email, password string) (*client.User, error) {
	user, err := users.VerifyUserPassword(c.Request().Context(), email, password)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("authenticate failed")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal server error during authentication")
	}
	return user, nil
}

func issueTokenResponse(c echo.Context, a *auth.Auth, user *client.User) error {
	token, err := a.IssueToken(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("issue token failed")
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error during authentication"})
	}
	return c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(a.TTL().Seconds()),
	})
}

// LoginHandler OAuth2 password flow 登入，回傳 JWT（行動裝置 / API 用）
// @Summary     Login with form credentials
// @Description username 欄位填 Email，驗證成功回傳 access token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Email"
// @Param       password formData string true "密碼"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(users client.Client, a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := authenticate(c, users, req.Username, req.Password)
		if err != nil {
			return err
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}
		return issueTokenResponse(c, a, user)
	}
}

// LoginJSONHandler JSON 登入，回傳 JWT（偏好 JSON 的客戶端用）
// @Summary     Login with JSON credentials
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginJSONRequest true "登入資料"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login/json [post]
func LoginJSONHandler(users client.Client, a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginJSONRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := authenticate(c, users, req.Email, req.Password)
		if err != nil {
			return err
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}
		return issueTokenResponse(c, a, user)
	}
}

// BrowserLoginHandler 登入並寫入 HTTP-only cookie（瀏覽器用）
// @Summary     Login and set auth cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginJSONRequest true "登入資料"
// @Success     200 {object} api.AuthSuccess
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/browser/login [post]
func BrowserLoginHandler(users client.Client, a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginJSONRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := authenticate(c, users, req.Email, req.Password)
		if err != nil {
			return err
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}

		token, err := a.IssueToken(user.ID, user.Email)
		if err != nil {
			log.Error().Err(err).Msg("issue token failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error during authentication"})
		}
		a.SetCookie(c, token)

		return c.JSON(http.StatusOK, api.AuthSuccess{
			Message: "Authentication successful",
			User:    api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		})
	}
}

// LogoutHandler 清除認證 cookie（瀏覽器用）
// @Summary     Logout and clear auth cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/browser/logout [post]
func LogoutHandler(a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		a.ClearCookie(c)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logout successful"})
	}
}
