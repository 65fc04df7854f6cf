package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post categories. Content is required only for blog posts.
const (
	CategoryGallery = "gallery"
	CategoryBlog    = "blog"
)

// Post is a gallery or blog entry with embedded likes and comments.
// Likes is a set of caller-supplied identifiers (emails); membership is
// unique, enforced with $addToSet at the persistence layer. Comments is
// append-only in insertion order.
type Post struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	ImageURL    string        `json:"imageUrl"    bson:"image_url"`
	Category    string        `json:"category"    bson:"category"`
	Content     string        `json:"content"     bson:"content"`
	Likes       []string      `json:"likes"       bson:"likes"`
	Comments    []Comment     `json:"comments"    bson:"comments"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}

// PostFields is the editable field set shared by create and full update.
// Likes and comments are not reachable through it.
type PostFields struct {
	Title       string `bson:"title"`
	Description string `bson:"description"`
	ImageURL    string `bson:"image_url"`
	Category    string `bson:"category"`
	Content     string `bson:"content"`
}
