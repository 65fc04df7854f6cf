package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/dto"
	"portfolio-backend/model"
)

func galleryPayload() map[string]string {
	return map[string]string{
		"title":       "T",
		"description": "D",
		"imageUrl":    "http://x/i.jpg",
		"category":    "gallery",
	}
}

func TestPostCreate(t *testing.T) {
	t.Run("gallery post starts with empty likes and comments", func(t *testing.T) {
		app, _, _ := newTestApp()

		resp := doJSON(t, app, http.MethodPost, "/api/posts", galleryPayload())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		post := decodeBody[model.Post](t, resp)
		assert.Equal(t, "T", post.Title)
		assert.Equal(t, model.CategoryGallery, post.Category)
		assert.NotNil(t, post.Likes)
		assert.Empty(t, post.Likes)
		assert.NotNil(t, post.Comments)
		assert.Empty(t, post.Comments)
		assert.False(t, post.ID.IsZero())
	})

	t.Run("blog post without content is rejected", func(t *testing.T) {
		app, _, _ := newTestApp()

		payload := galleryPayload()
		payload["category"] = "blog"
		resp := doJSON(t, app, http.MethodPost, "/api/posts", payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Contains(t, body.Message, "content")
	})

	t.Run("blog post with content is accepted", func(t *testing.T) {
		app, _, _ := newTestApp()

		payload := galleryPayload()
		payload["category"] = "blog"
		payload["content"] = "long form text"
		resp := doJSON(t, app, http.MethodPost, "/api/posts", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		post := decodeBody[model.Post](t, resp)
		assert.Equal(t, "long form text", post.Content)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		app, _, _ := newTestApp()

		payload := galleryPayload()
		payload["category"] = "podcast"
		resp := doJSON(t, app, http.MethodPost, "/api/posts", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		app, _, _ := newTestApp()

		payload := galleryPayload()
		delete(payload, "title")
		resp := doJSON(t, app, http.MethodPost, "/api/posts", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPostList(t *testing.T) {
	app, _, posts := newTestApp()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []struct {
		title    string
		category string
	}{
		{"old gallery", model.CategoryGallery},
		{"blog entry", model.CategoryBlog},
		{"new gallery", model.CategoryGallery},
	}
	for i, s := range seed {
		p := &model.Post{
			Title:       s.title,
			Description: "d",
			ImageURL:    "http://x/i.jpg",
			Category:    s.category,
			Content:     "c",
			Likes:       []string{},
			Comments:    []model.Comment{},
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, posts.Insert(context.Background(), p))
	}

	t.Run("unfiltered, newest first", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listed := decodeBody[[]model.Post](t, resp)
		require.Len(t, listed, 3)
		assert.Equal(t, "new gallery", listed[0].Title)
		assert.Equal(t, "old gallery", listed[2].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts?category=blog", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listed := decodeBody[[]model.Post](t, resp)
		require.Len(t, listed, 1)
		assert.Equal(t, "blog entry", listed[0].Title)
	})

	t.Run("category without matches returns empty array", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/posts?category=nothing", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listed := decodeBody[[]model.Post](t, resp)
		assert.Empty(t, listed)
	})
}

func TestPostUpdate(t *testing.T) {
	app, _, posts := newTestApp()

	p := &model.Post{
		Title:       "before",
		Description: "d",
		ImageURL:    "http://x/i.jpg",
		Category:    model.CategoryGallery,
		Likes:       []string{"a@x.com"},
		Comments: []model.Comment{{
			User:      model.CommentUser{Name: "N", Email: "n@x.com"},
			Content:   "first",
			CreatedAt: time.Now().UTC(),
		}},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, posts.Insert(context.Background(), p))
	id := p.ID.Hex()

	t.Run("replaces editable fields, keeps likes and comments", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/posts/"+id, map[string]string{
			"title":       "after",
			"description": "d2",
			"imageUrl":    "http://x/j.jpg",
			"category":    "blog",
			"content":     "now a blog",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		updated := decodeBody[model.Post](t, resp)
		assert.Equal(t, "after", updated.Title)
		assert.Equal(t, model.CategoryBlog, updated.Category)
		assert.Equal(t, []string{"a@x.com"}, updated.Likes)
		require.Len(t, updated.Comments, 1)
		assert.Equal(t, "first", updated.Comments[0].Content)
		assert.False(t, updated.UpdatedAt.IsZero())
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("validation matches create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/posts/"+id, map[string]string{
			"title":       "after",
			"description": "d2",
			"imageUrl":    "http://x/j.jpg",
			"category":    "blog",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/posts/000000000000000000000000", map[string]string{
			"title":       "x",
			"description": "d",
			"imageUrl":    "http://x/i.jpg",
			"category":    "gallery",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPostGetAndDelete(t *testing.T) {
	app, _, posts := newTestApp()

	p := &model.Post{
		Title:       "T",
		Description: "D",
		ImageURL:    "http://x/i.jpg",
		Category:    model.CategoryGallery,
		Likes:       []string{},
		Comments:    []model.Comment{},
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, posts.Insert(context.Background(), p))
	id := p.ID.Hex()

	resp := doJSON(t, app, http.MethodGet, "/api/posts/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.ConfirmationResponse](t, resp)
	assert.Equal(t, "Post deleted successfully", body.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
