package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/dto"
	"portfolio-backend/internal/repository"
)

// Like godoc
// @Summary      Like a post
// @Description  Adds the submitted email to the post's like set. Liking again with the same email is a no-op.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Post ID (hex)"
// @Param        data  body      dto.LikeRequestDTO  true  "Liker identity"
// @Success      200   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/like [post]
func (h *PostHandler) Like(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body dto.LikeRequestDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := dto.Validate(body); err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.Repo.AddLike(ctx, id, body.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Post not found")
	}
	if err != nil {
		return serverError(c, "like post", err)
	}
	return c.JSON(post)
}
