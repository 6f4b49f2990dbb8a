package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type FallbackCounter interface {
	Count() int64
}

type HealthHandler struct {
	db        Pinger
	fallbacks FallbackCounter
	version   string
}

func NewHealthHandler(db Pinger, fallbacks FallbackCounter, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		fallbacks: fallbacks,
		version:   version,
	}
}

// Health godoc
// @Summary Service health
// @Description Database status and the number of translation fallbacks served since start
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK

	dbStatus := "healthy"
	if err := h.db.HealthCheck(c.Context()); err != nil {
		dbStatus = "unhealthy"
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	var fallbacks int64
	if h.fallbacks != nil {
		fallbacks = h.fallbacks.Count()
	}

	return c.Status(code).JSON(fiber.Map{
		"status":                status,
		"service":               "edu-turkish-backend",
		"version":               h.version,
		"database":              dbStatus,
		"translation_fallbacks": fallbacks,
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
	})
}
