package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/model"
)

func TestCommentOnPost(t *testing.T) {
	t.Run("comments append in insertion order", func(t *testing.T) {
		app, _, posts := newTestApp()
		p := seedPost(t, posts)

		var last model.Post
		for i := 0; i < 3; i++ {
			resp := doJSON(t, app, http.MethodPost, "/api/posts/"+p.ID.Hex()+"/comments", map[string]string{
				"name":    "N",
				"email":   "n@x.com",
				"content": fmt.Sprintf("comment %d", i),
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			last = decodeBody[model.Post](t, resp)
			require.Len(t, last.Comments, i+1)
		}

		for i, c := range last.Comments {
			assert.Equal(t, fmt.Sprintf("comment %d", i), c.Content)
			assert.Equal(t, "N", c.User.Name)
			assert.False(t, c.CreatedAt.IsZero())
		}
	})

	t.Run("missing content is rejected", func(t *testing.T) {
		app, _, posts := newTestApp()
		p := seedPost(t, posts)

		resp := doJSON(t, app, http.MethodPost, "/api/posts/"+p.ID.Hex()+"/comments", map[string]string{
			"name":  "N",
			"email": "n@x.com",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/posts/"+p.ID.Hex(), nil)
		got := decodeBody[model.Post](t, resp)
		assert.Empty(t, got.Comments)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		app, _, posts := newTestApp()
		p := seedPost(t, posts)

		resp := doJSON(t, app, http.MethodPost, "/api/posts/"+p.ID.Hex()+"/comments", map[string]string{
			"name":    "N",
			"email":   "nope",
			"content": "hi",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown post", func(t *testing.T) {
		app, _, _ := newTestApp()

		resp := doJSON(t, app, http.MethodPost, "/api/posts/000000000000000000000000/comments", map[string]string{
			"name":    "N",
			"email":   "n@x.com",
			"content": "hi",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
