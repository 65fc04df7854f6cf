// Package mock provides in-memory repositories for handler tests.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/internal/repository"
	"portfolio-backend/model"
)

type MessageRepository struct {
	mu       sync.RWMutex
	messages map[bson.ObjectID]model.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[bson.ObjectID]model.Message)}
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

func (m *MessageRepository) Insert(_ context.Context, msg *model.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg.ID = bson.NewObjectID()
	m.messages[msg.ID] = *msg
	return nil
}

func (m *MessageRepository) List(_ context.Context) ([]model.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MessageRepository) GetByID(_ context.Context, id bson.ObjectID) (*model.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg, ok := m.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &msg, nil
}

func (m *MessageRepository) Delete(_ context.Context, id bson.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.messages, id)
	return nil
}

type PostRepository struct {
	mu    sync.RWMutex
	posts map[bson.ObjectID]model.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[bson.ObjectID]model.Post)}
}

var _ repository.PostRepository = (*PostRepository)(nil)

func (m *PostRepository) Insert(_ context.Context, post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post.ID = bson.NewObjectID()
	m.posts[post.ID] = clone(*post)
	return nil
}

func (m *PostRepository) List(_ context.Context, category string) ([]model.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []model.Post{}
	for _, p := range m.posts {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *PostRepository) GetByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := clone(p)
	return &cp, nil
}

func (m *PostRepository) Update(_ context.Context, id bson.ObjectID, fields model.PostFields) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Title = fields.Title
	p.Description = fields.Description
	p.ImageURL = fields.ImageURL
	p.Category = fields.Category
	p.Content = fields.Content
	p.UpdatedAt = time.Now().UTC()
	m.posts[id] = p
	cp := clone(p)
	return &cp, nil
}

func (m *PostRepository) Delete(_ context.Context, id bson.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// AddLike mirrors $addToSet: inserting an identifier that is already
// present leaves the set unchanged.
func (m *PostRepository) AddLike(_ context.Context, id bson.ObjectID, email string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := false
	for _, l := range p.Likes {
		if l == email {
			found = true
			break
		}
	}
	if !found {
		p.Likes = append(p.Likes, email)
	}
	p.UpdatedAt = time.Now().UTC()
	m.posts[id] = p
	cp := clone(p)
	return &cp, nil
}

// AddComment mirrors $push: append-only, insertion order.
func (m *PostRepository) AddComment(_ context.Context, id bson.ObjectID, comment model.Comment) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Comments = append(p.Comments, comment)
	p.UpdatedAt = time.Now().UTC()
	m.posts[id] = p
	cp := clone(p)
	return &cp, nil
}

func clone(p model.Post) model.Post {
	p.Likes = append([]string{}, p.Likes...)
	p.Comments = append([]model.Comment{}, p.Comments...)
	return p
}
