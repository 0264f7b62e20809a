package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	VoteTargetQuestion = "question"
	VoteTargetAnswer   = "answer"

	VoteTypeUpvote   = "upvote"
	VoteTypeDownvote = "downvote"
)

// Vote records one user's vote on a question or answer. At most one vote
// exists per (author, action_id, action_type); its type drives the target's
// denormalized counters.
type Vote struct {
	ID         bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Author     bson.ObjectID `json:"author"     bson:"author"`
	ActionID   bson.ObjectID `json:"actionId"   bson:"action_id"`
	ActionType string        `json:"actionType" bson:"action_type"`
	VoteType   string        `json:"voteType"   bson:"vote_type"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt"  bson:"updated_at"`
}
