package model

import "time"

// CommentUser identifies the author of a comment. There are no accounts;
// the name and email are whatever the visitor submitted.
type CommentUser struct {
	Name  string `json:"name"  bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Comment is embedded in its post, appended with $push and never reordered.
type Comment struct {
	User      CommentUser `json:"user"      bson:"user"`
	Content   string      `json:"content"   bson:"content"`
	CreatedAt time.Time   `json:"createdAt" bson:"created_at"`
}
