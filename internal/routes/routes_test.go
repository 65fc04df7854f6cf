package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/configs"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/repository/mock"
)

// Every route in the public surface must be registered; a 404/405 here means
// a wiring mistake, not a missing document.
func TestRegisterWiresAllRoutes(t *testing.T) {
	app := fiber.New()
	Register(app, Deps{
		Messages: mock.NewMessageRepository(),
		Posts:    mock.NewPostRepository(),
		Health:   &handlers.HealthHandler{Cfg: configs.Config{Env: "test"}},
	})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/api/status"},
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/messages"},
		{http.MethodGet, "/api/messages/000000000000000000000000"},
		{http.MethodDelete, "/api/messages/000000000000000000000000"},
		{http.MethodGet, "/api/posts"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/api/posts/000000000000000000000000"},
		{http.MethodPut, "/api/posts/000000000000000000000000"},
		{http.MethodDelete, "/api/posts/000000000000000000000000"},
		{http.MethodPost, "/api/posts/000000000000000000000000/like"},
		{http.MethodPost, "/api/posts/000000000000000000000000/comments"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.NotEqual(t, http.StatusMethodNotAllowed, resp.StatusCode)
			// unmatched paths come back 404 with Fiber's plain text body;
			// our handlers always answer JSON
			assert.Contains(t, resp.Header.Get("Content-Type"), "json")
		})
	}
}
