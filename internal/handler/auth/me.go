// File: internal/handler/auth/me.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/zstrangeway/ai-scaffold/internal/api"
	"github.com/zstrangeway/ai-scaffold/internal/client"
	"github.com/zstrangeway/ai-scaffold/internal/middleware"
)

// GetMeHandler 回傳目前登入使用者的個人資料
// @Summary     Get current user profile
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authenticated"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
	}
}

// UpdateMeHandler 更新目前登入使用者的個人資料，省略的欄位維持原值
// @Summary     Update current user profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.UpdateProfileRequest true "欲更新的欄位"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [put]
func UpdateMeHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		current := middleware.CurrentUser(c)
		if current == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authenticated"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := users.GetUserByID(ctx, current.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", current.ID).Msg("update profile lookup failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating user profile"})
		}
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User profile not found"})
		}

		// 未提供的欄位沿用現值
		name := user.Name
		if req.Name != nil {
			name = *req.Name
		}
		email := user.Email
		if req.Email != nil {
			email = *req.Email
		}

		updated, err := users.UpdateUser(ctx, current.ID, name, email)
		if err != nil {
			if errors.Is(err, client.ErrEmailExists) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: fmt.Sprintf("Email %s is already in use", email)})
			}
			log.Error().Err(err).Str("user_id", current.ID).Msg("update profile failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating user profile"})
		}
		if updated == nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to update user profile"})
		}

		return c.JSON(http.StatusOK, api.UserResponse{ID: updated.ID, Name: updated.Name, Email: updated.Email})
	}
}

// DeleteMeHandler 刪除目前登入使用者的帳號
// @Summary     Delete current user account
// @Tags        auth
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [delete]
func DeleteMeHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		current := middleware.CurrentUser(c)
		if current == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authenticated"})
		}

		deleted, err := users.DeleteUser(c.Request().Context(), current.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", current.ID).Msg("delete account failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting user account"})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User account not found"})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
