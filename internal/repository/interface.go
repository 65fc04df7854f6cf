package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/model"
)

// MessageRepository persists contact-form submissions.
type MessageRepository interface {
	Insert(ctx context.Context, msg *model.Message) error
	List(ctx context.Context) ([]model.Message, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Message, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// PostRepository persists posts with their embedded likes and comments.
// AddLike and AddComment must be atomic at the store (set-insert and
// list-append respectively) so concurrent callers cannot lose updates.
type PostRepository interface {
	Insert(ctx context.Context, post *model.Post) error
	List(ctx context.Context, category string) ([]model.Post, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	Update(ctx context.Context, id bson.ObjectID, fields model.PostFields) (*model.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddLike(ctx context.Context, id bson.ObjectID, email string) (*model.Post, error)
	AddComment(ctx context.Context, id bson.ObjectID, comment model.Comment) (*model.Post, error)
}
