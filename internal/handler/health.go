// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "gateway-service"
	serviceVersion = "0.1.0"
)

var timeNow = time.Now

// RootResponse 服務首頁回應模型
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message" example:"Gateway Service is running"`
	Service string `json:"service" example:"gateway-service"`
	Version string `json:"version" example:"0.1.0"`
	Status  string `json:"status" example:"healthy"`
}

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"gateway-service"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
}

// RootHandler 服務首頁
// @Summary     Service banner
// @Tags        health
// @Produce     json
// @Success     200 {object} RootResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, RootResponse{
			Message: "Gateway Service is running",
			Service: serviceName,
			Version: serviceVersion,
			Status:  "healthy",
		})
	}
}

// HealthHandler 健康檢查
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Service:   serviceName,
			Timestamp: timeNow().UTC().Format(time.RFC3339),
		})
	}
}
