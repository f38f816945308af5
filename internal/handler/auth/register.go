// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/zstrangeway/ai-scaffold/internal/api"
	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
)

// createAccount 註冊共用流程：先確認 Email 未被使用再建立帳號
func createAccount(c echo.Context, users client.Client, req *api.RegisterRequest) (*client.User, error) {
	ctx := c.Request().Context()

	existing, err := users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("register lookup failed")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal server error during registration")
	}
	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusConflict, "Email address is already registered")
	}

	user, err := users.CreateUserWithPassword(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, client.ErrEmailExists) {
			return nil, echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("User with email %s already exists", req.Email))
		}
		log.Error().Err(err).Str("email", req.Email).Msg("register create failed")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal server error during registration")
	}
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user account")
	}
	return user, nil
}

// RegisterHandler 註冊新使用者並回傳 JWT（行動裝置 / API 用）
// @Summary     Register a new user
// @Description 建立新帳號並回傳 access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(users client.Client, a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := createAccount(c, users, &req)
		if err != nil {
			return err
		}

		token, err := a.IssueToken(user.ID, user.Email)
		if err != nil {
			log.Error().Err(err).Msg("issue token failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error during registration"})
		}

		return c.JSON(http.StatusCreated, api.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int(a.TTL().Seconds()),
		})
	}
}

// BrowserRegisterHandler 註冊新使用者並寫入 HTTP-only cookie（瀏覽器用）
// @Summary     Register a new user (browser)
// @Description 建立新帳號並以 HTTP-only cookie 保存 token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.AuthSuccess
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/browser/register [post]
func BrowserRegisterHandler(users client.Client, a *auth.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := createAccount(c, users, &req)
		if err != nil {
			return err
		}

		token, err := a.IssueToken(user.ID, user.Email)
		if err != nil {
			log.Error().Err(err).Msg("issue token failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error during registration"})
		}
		a.SetCookie(c, token)

		return c.JSON(http.StatusCreated, api.AuthSuccess{
			Message: "Registration successful",
			User:    api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		})
	}
}
