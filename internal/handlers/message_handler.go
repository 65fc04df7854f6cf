package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/dto"
	"portfolio-backend/internal/repository"
	"portfolio-backend/model"
)

type MessageHandler struct {
	Repo repository.MessageRepository
}

// Create godoc
// @Summary      Submit a contact message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreateMessageDTO  true  "Message payload"
// @Success      201   {object}  dto.MessageCreatedResponse
// @Failure      400   {object}  dto.MessageRejectedResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	rejected := func(detail string) error {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageRejectedResponse{
			Message: "Failed to send message",
			Error:   detail,
		})
	}

	var body dto.CreateMessageDTO
	if err := c.BodyParser(&body); err != nil {
		return rejected("invalid body")
	}
	if err := dto.Validate(body); err != nil {
		return rejected(err.Error())
	}

	msg := &model.Message{
		Name:      body.Name,
		Email:     body.Email,
		Message:   body.Message,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.Repo.Insert(ctx, msg); err != nil {
		return serverError(c, "create message", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageCreatedResponse{
		Success: true,
		Message: "Message sent successfully!",
		Data:    msg,
	})
}

// List godoc
// @Summary      List contact messages, newest first
// @Tags         messages
// @Produce      json
// @Success      200  {array}   model.Message
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	messages, err := h.Repo.List(ctx)
	if err != nil {
		return serverError(c, "list messages", err)
	}
	return c.JSON(messages)
}

// GetByID godoc
// @Summary      Get one contact message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID (hex)"
// @Success      200  {object}  model.Message
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/messages/{id} [get]
func (h *MessageHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	msg, err := h.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Message not found")
	}
	if err != nil {
		return serverError(c, "get message", err)
	}
	return c.JSON(msg)
}

// Delete godoc
// @Summary      Delete a contact message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID (hex)"
// @Success      200  {object}  dto.ConfirmationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	err = h.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Message not found")
	}
	if err != nil {
		return serverError(c, "delete message", err)
	}
	return c.JSON(dto.ConfirmationResponse{Message: "Message deleted successfully"})
}
