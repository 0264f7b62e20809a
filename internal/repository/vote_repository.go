package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/model"
)

// FindVote returns the caller's vote on a target, or (nil, nil) when absent.
func FindVote(ctx context.Context, db *mongo.Database, author, actionID bson.ObjectID, actionType string) (*model.Vote, error) {
	var vote model.Vote
	err := db.Collection(ColVotes).FindOne(ctx, bson.M{
		"author":      author,
		"action_id":   actionID,
		"action_type": actionType,
	}).Decode(&vote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func InsertVote(ctx context.Context, db *mongo.Database, vote model.Vote) error {
	now := time.Now().UTC()
	vote.CreatedAt = now
	vote.UpdatedAt = now
	_, err := db.Collection(ColVotes).InsertOne(ctx, vote)
	return err
}

func UpdateVoteType(ctx context.Context, db *mongo.Database, id bson.ObjectID, voteType string) error {
	_, err := db.Collection(ColVotes).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"vote_type": voteType, "updated_at": time.Now().UTC()},
	})
	return err
}

func DeleteVote(ctx context.Context, db *mongo.Database, id bson.ObjectID) error {
	_, err := db.Collection(ColVotes).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
