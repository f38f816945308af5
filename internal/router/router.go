// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
	"github.com/zstrangeway/ai-scaffold/internal/handler"
	authhandler "github.com/zstrangeway/ai-scaffold/internal/handler/auth"
	"github.com/zstrangeway/ai-scaffold/internal/handler/users"
	"github.com/zstrangeway/ai-scaffold/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, userClient client.Client, a *auth.Auth) {
	// 服務狀態
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler())

	// Token 認證（行動裝置 / API）與 Cookie 認證（瀏覽器）
	authGroup := e.Group("/auth")
	authGroup.POST("/register", authhandler.RegisterHandler(userClient, a))
	authGroup.POST("/login", authhandler.LoginHandler(userClient, a))
	authGroup.POST("/login/json", authhandler.LoginJSONHandler(userClient, a))
	authGroup.POST("/browser/register", authhandler.BrowserRegisterHandler(userClient, a))
	authGroup.POST("/browser/login", authhandler.BrowserLoginHandler(userClient, a))
	authGroup.POST("/browser/logout", authhandler.LogoutHandler(a))

	// 目前使用者個人資料
	me := e.Group("/auth/me", middleware.RequireUser(a, userClient))
	me.GET("", authhandler.GetMeHandler())
	me.PUT("", authhandler.UpdateMeHandler(userClient))
	me.DELETE("", authhandler.DeleteMeHandler(userClient))

	// 使用者管理（需登入）
	usersGroup := e.Group("/users", middleware.RequireUser(a, userClient))
	usersGroup.GET("/", users.ListUsersHandler(userClient))
	usersGroup.GET("/:id", users.GetUserHandler(userClient))
	usersGroup.GET("/email/:email", users.GetUserByEmailHandler(userClient))
	usersGroup.PUT("/:id", users.UpdateUserHandler(userClient))
	usersGroup.DELETE("/:id", users.DeleteUserHandler(userClient))
}
