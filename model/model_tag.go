package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Tag carries a denormalized count of questions currently referencing it.
type Tag struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name      string        `json:"name"      bson:"name"`
	Questions int           `json:"questions" bson:"questions"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// TagQuestion is the join record mirroring Question.Tags.
type TagQuestion struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Tag       bson.ObjectID `json:"tag"       bson:"tag"`
	Question  bson.ObjectID `json:"question"  bson:"question"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
