// File: internal/handler/users/user.go
package users

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

// ListUsersHandler 分頁列出所有使用者
// @Summary     List users
// @Description 依照 page/limit 分頁回傳使用者清單
// @Tags        users
// @Produce     json
// @Param       page  query int false "頁數 (1-based)" default(1) minimum(1)
// @Param       limit query int false "每頁筆數" default(10) minimum(1) maximum(100)
// @Success     200 {object} api.UsersListResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		page := 1
		if req.Page != nil {
			page = *req.Page
		}
		limit := 10
		if req.Limit != nil {
			limit = *req.Limit
		}

		list, total, err := users.ListUsers(c.Request().Context(), page, limit)
		if err != nil {
			log.Error().Err(err).Int("page", page).Int("limit", limit).Msg("list users failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error retrieving users list"})
		}

		resp := api.UsersListResponse{
			Users: make([]api.UserResponse, 0, len(list)),
			Total: total,
			Page:  page,
			Limit: limit,
		}
		for _, u := range list {
			resp.Users = append(resp.Users, api.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler 以 ID 查詢使用者
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		user, err := users.GetUserByID(c.Request().Context(), id)
		if err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("get user failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error retrieving user information"})
		}
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fmt.Sprintf("User with ID %s not found", id)})
		}
		return c.JSON(http.StatusOK, api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
	}
}

// GetUserByEmailHandler 以 Email 查詢使用者
// @Summary     Get a user by email
// @Tags        users
// @Produce     json
// @Param       email path string true "使用者 Email"
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/email/{email} [get]
func GetUserByEmailHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Param("email")
		user, err := users.GetUserByEmail(c.Request().Context(), email)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("get user by email failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error retrieving user information"})
		}
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fmt.Sprintf("User with email %s not found", email)})
		}
		return c.JSON(http.StatusOK, api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
	}
}

// UpdateUserHandler 更新指定使用者（管理操作，一般使用者請用 PUT /auth/me）
// @Summary     Update a user by ID
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path string                true "使用者 ID"
// @Param       payload body api.UpdateUserRequest true "更新資料"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		updated, err := users.UpdateUser(c.Request().Context(), id, req.Name, req.Email)
		if err != nil {
			if errors.Is(err, client.ErrEmailExists) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: fmt.Sprintf("Email %s is already in use", req.Email)})
			}
			log.Error().Err(err).Str("user_id", id).Msg("update user failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating user information"})
		}
		if updated == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fmt.Sprintf("User with ID %s not found", id)})
		}

		return c.JSON(http.StatusOK, api.UserResponse{ID: updated.ID, Name: updated.Name, Email: updated.Email})
	}
}

// DeleteUserHandler 刪除指定使用者（管理操作），不允許刪除自己
// @Summary     Delete a user by ID
// @Tags        users
// @Param       id path string true "使用者 ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(users client.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		current := middleware.CurrentUser(c)
		if current == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authenticated"})
		}
		if id == current.ID {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Cannot delete your own account via this endpoint. Use DELETE /auth/me instead"})
		}

		deleted, err := users.DeleteUser(c.Request().Context(), id)
		if err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("delete user failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting user account"})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fmt.Sprintf("User with ID %s not found", id)})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
