package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Interaction records a user action against a question or answer
// (view, vote, bookmark, ...). Reputation accounting reads these later.
type Interaction struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	User       bson.ObjectID `json:"user"       bson:"user"`
	Author     bson.ObjectID `json:"author"     bson:"author"`
	Action     string        `json:"action"     bson:"action"`
	ActionID   bson.ObjectID `json:"actionId"   bson:"action_id"`
	ActionType string        `json:"actionType" bson:"action_type"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
}
