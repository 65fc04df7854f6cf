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

// AddComment godoc
// @Summary      Comment on a post
// @Description  Appends a comment to the post. Comments keep insertion order and cannot be edited or removed.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Post ID (hex)"
// @Param        data  body      dto.CreateCommentDTO  true  "Comment payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body dto.CreateCommentDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := dto.Validate(body); err != nil {
		return badRequest(c, err.Error())
	}

	comment := model.Comment{
		User:      model.CommentUser{Name: body.Name, Email: body.Email},
		Content:   body.Content,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.Repo.AddComment(ctx, id, comment)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Post not found")
	}
	if err != nil {
		return serverError(c, "comment on post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
