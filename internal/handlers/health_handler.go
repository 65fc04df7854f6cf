package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/configs"
	"portfolio-backend/database"
)

// HealthHandler serves liveness and store-connectivity probes. Health never
// touches the database so it stays green while Mongo is down.
type HealthHandler struct {
	DB  *database.Mongo
	Cfg configs.Config
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.Cfg.Env,
	})
}

// Status godoc
// @Summary      Database connection status
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/status [get]
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	connected := false
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		connected = h.DB.Ping(ctx) == nil
	}

	state := "disconnected"
	if connected {
		state = "connected"
	}
	return c.JSON(fiber.Map{
		"connected": connected,
		"state":     state,
		"database":  h.Cfg.DBName,
		"port":      h.Cfg.Port,
	})
}
