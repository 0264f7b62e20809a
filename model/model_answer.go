package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Answer struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Author    bson.ObjectID `json:"author"    bson:"author"`
	Question  bson.ObjectID `json:"question"  bson:"question"`
	Content   string        `json:"content"   bson:"content"`
	Upvotes   int           `json:"upvotes"   bson:"upvotes"`
	Downvotes int           `json:"downvotes" bson:"downvotes"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
