package routes

import (
	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/repository"
)

// Deps carries everything the routes need; repositories are injected so
// tests can swap in the in-memory ones.
type Deps struct {
	Messages repository.MessageRepository
	Posts    repository.PostRepository
	Health   *handlers.HealthHandler
}

func Register(app *fiber.App, deps Deps) {
	mh := &handlers.MessageHandler{Repo: deps.Messages}
	ph := &handlers.PostHandler{Repo: deps.Posts}

	app.Get("/health", deps.Health.Health)

	api := app.Group("/api")
	api.Get("/status", deps.Health.Status)

	messages := api.Group("/messages")
	messages.Get("/", mh.List)
	messages.Post("/", mh.Create)
	messages.Get("/:id", mh.GetByID)
	messages.Delete("/:id", mh.Delete)

	posts := api.Group("/posts")
	posts.Get("/", ph.List)
	posts.Post("/", ph.Create)
	posts.Get("/:id", ph.GetByID)
	posts.Put("/:id", ph.Update)
	posts.Delete("/:id", ph.Delete)
	posts.Post("/:id/like", ph.Like)
	posts.Post("/:id/comments", ph.AddComment)
}
