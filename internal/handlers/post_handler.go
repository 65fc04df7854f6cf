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

type PostHandler struct {
	Repo repository.PostRepository
}

// Create godoc
// @Summary      Create a post
// @Description  Create a gallery or blog entry. Content is required for blog posts.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        data  body      dto.PostFieldsDTO  true  "Post payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.PostFieldsDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := dto.Validate(body); err != nil {
		return badRequest(c, err.Error())
	}

	now := time.Now().UTC()
	post := &model.Post{
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Category:    body.Category,
		Content:     body.Content,
		Likes:       []string{},
		Comments:    []model.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	if err := h.Repo.Insert(ctx, post); err != nil {
		return serverError(c, "create post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// List godoc
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "Exact category filter (gallery|blog)"
// @Success      200       {array}   model.Post
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	posts, err := h.Repo.List(ctx, c.Query("category"))
	if err != nil {
		return serverError(c, "list posts", err)
	}
	return c.JSON(posts)
}

// GetByID godoc
// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  model.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Post not found")
	}
	if err != nil {
		return serverError(c, "get post", err)
	}
	return c.JSON(post)
}

// Update godoc
// @Summary      Replace a post's editable fields
// @Description  Replaces title, description, imageUrl, category and content under the same rules as create. Likes and comments are untouched.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post ID (hex)"
// @Param        data  body      dto.PostFieldsDTO  true  "Post payload"
// @Success      200   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body dto.PostFieldsDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := dto.Validate(body); err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	post, err := h.Repo.Update(ctx, id, model.PostFields{
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Category:    body.Category,
		Content:     body.Content,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Post not found")
	}
	if err != nil {
		return serverError(c, "update post", err)
	}
	return c.JSON(post)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.ConfirmationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	ctx, cancel := context.WithTimeout(c.Context(), mongoTimeout)
	defer cancel()

	err = h.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Post not found")
	}
	if err != nil {
		return serverError(c, "delete post", err)
	}
	return c.JSON(dto.ConfirmationResponse{Message: "Post deleted successfully"})
}
