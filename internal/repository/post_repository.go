package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"portfolio-backend/model"
)

// MongoPostRepository stores posts in the "posts" collection. Likes and
// comments live inside the post document; all mutations of them go through
// single atomic update operators.
type MongoPostRepository struct {
	col *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{col: db.Collection("posts")}
}

var _ PostRepository = (*MongoPostRepository)(nil)

func (r *MongoPostRepository) Insert(ctx context.Context, post *model.Post) error {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// List returns posts newest first, optionally narrowed to one category.
func (r *MongoPostRepository) List(ctx context.Context, category string) ([]model.Post, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the editable field set and leaves likes/comments alone.
func (r *MongoPostRepository) Update(ctx context.Context, id bson.ObjectID, fields model.PostFields) (*model.Post, error) {
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"image_url":   fields.ImageURL,
		"category":    fields.Category,
		"content":     fields.Content,
		"updated_at":  time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *MongoPostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike records the identifier in the likes set. $addToSet makes a repeat
// like by the same identifier a no-op, even when two likers race.
func (r *MongoPostRepository) AddLike(ctx context.Context, id bson.ObjectID, email string) (*model.Post, error) {
	update := bson.M{
		"$addToSet": bson.M{"likes": email},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// AddComment appends to the embedded comment list. $push keeps insertion
// order and cannot drop concurrent appends.
func (r *MongoPostRepository) AddComment(ctx context.Context, id bson.ObjectID, comment model.Comment) (*model.Post, error) {
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *MongoPostRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.M) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
