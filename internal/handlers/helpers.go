package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/dto"
)

// mongoTimeout bounds every persistence round-trip started by a handler.
const mongoTimeout = 5 * time.Second

func parseID(c *fiber.Ctx) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.Params("id"))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: msg})
}

// serverError logs the detail and returns a generic 500; store internals
// never reach the client.
func serverError(c *fiber.Ctx, op string, err error) error {
	slog.Error("request failed", "op", op, "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
}
