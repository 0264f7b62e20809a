package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection is a saved-question bookmark, at most one per (author, question).
type Collection struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Author    bson.ObjectID `json:"author"    bson:"author"`
	Question  bson.ObjectID `json:"question"  bson:"question"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
