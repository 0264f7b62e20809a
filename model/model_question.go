package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Question struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Title     string          `json:"title"     bson:"title"`
	Content   string          `json:"content"   bson:"content"`
	Author    bson.ObjectID   `json:"author"    bson:"author"`
	Tags      []bson.ObjectID `json:"tags"      bson:"tags"`
	Views     int             `json:"views"     bson:"views"`
	Upvotes   int             `json:"upvotes"   bson:"upvotes"`
	Downvotes int             `json:"downvotes" bson:"downvotes"`
	Answers   int             `json:"answers"   bson:"answers"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}
