package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"portfolio-backend/configs"
	"portfolio-backend/internal/repository/mock"
)

// newTestApp wires the handlers to in-memory repositories on a bare Fiber
// app. Routes mirror internal/routes; they are registered here by hand to
// avoid an import cycle with the routes package.
func newTestApp() (*fiber.App, *mock.MessageRepository, *mock.PostRepository) {
	msgs := mock.NewMessageRepository()
	posts := mock.NewPostRepository()

	mh := &MessageHandler{Repo: msgs}
	ph := &PostHandler{Repo: posts}
	hh := &HealthHandler{Cfg: configs.Config{Env: "test", DBName: "portfolio", Port: "5000"}}

	app := fiber.New()
	app.Get("/health", hh.Health)

	api := app.Group("/api")
	api.Get("/status", hh.Status)

	messages := api.Group("/messages")
	messages.Get("/", mh.List)
	messages.Post("/", mh.Create)
	messages.Get("/:id", mh.GetByID)
	messages.Delete("/:id", mh.Delete)

	postsGroup := api.Group("/posts")
	postsGroup.Get("/", ph.List)
	postsGroup.Post("/", ph.Create)
	postsGroup.Get("/:id", ph.GetByID)
	postsGroup.Put("/:id", ph.Update)
	postsGroup.Delete("/:id", ph.Delete)
	postsGroup.Post("/:id/like", ph.Like)
	postsGroup.Post("/:id/comments", ph.AddComment)

	return app, msgs, posts
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
