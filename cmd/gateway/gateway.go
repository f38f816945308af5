// @title        Gateway Service API
// @version      1.0
// @description  使用者服務的 HTTP/JSON 閘道，負責 JWT 簽發與 gRPC 轉發
// @host         localhost:8000
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zstrangeway/ai-scaffold/internal/auth"
	"github.com/zstrangeway/ai-scaffold/internal/client"
	"github.com/zstrangeway/ai-scaffold/internal/config"
	"github.com/zstrangeway/ai-scaffold/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig   = config.LoadGateway
	dialUser     = func(target string) (client.Client, error) { return client.Dial(target) }
	startServer  = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	stopServer   = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	signalNotify = signal.Notify
	exitFunc     = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %v", err)
	}

	if lvl, perr := zerolog.ParseLevel(cfg.LogLevel); perr == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	users, err := dialUser(cfg.UserServiceURL)
	if err != nil {
		return fmt.Errorf("user service 連線失敗: %v", err)
	}
	defer users.Close()

	a := auth.New(cfg.JWTSecretKey, cfg.TokenTTL(), cfg.IsProduction())

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	router.Setup(e, users, a)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.Addr()) }()
	log.Info().Str("addr", cfg.Addr()).Msg("gateway 開始提供 HTTP 服務")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP 服務異常終止: %v", err)
		}
	case <-quit:
		log.Info().Msg("收到終止訊號，開始關閉 gateway")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := stopServer(ctx, e); err != nil {
			return fmt.Errorf("關閉 HTTP 服務失敗: %v", err)
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("gateway 啟動失敗")
		exitFunc(1)
	}
}
