package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Message is a contact-form submission. Messages are never mutated after
// creation, only listed and deleted.
type Message struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name      string        `json:"name"      bson:"name"`
	Email     string        `json:"email"     bson:"email"`
	Message   string        `json:"message"   bson:"message"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
