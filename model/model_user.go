package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Name       string        `json:"name"       bson:"name"`
	Username   string        `json:"username"   bson:"username"`
	Email      string        `json:"email"      bson:"email"`
	Bio        string        `json:"bio,omitempty"      bson:"bio,omitempty"`
	Image      string        `json:"image,omitempty"    bson:"image,omitempty"`
	Location   string        `json:"location,omitempty" bson:"location,omitempty"`
	Portfolio  string        `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
	Reputation int           `json:"reputation" bson:"reputation"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt"  bson:"updated_at"`
}
