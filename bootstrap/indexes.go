package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devflow_workspace/internal/repository"
)

// EnsureIndexes creates the indexes the mutations rely on.
//
// Votes and collections intentionally have no unique index: the reference
// behavior enforces at-most-one per (author, target) by query-before-write,
// and a unique constraint would change how concurrent toggles fail.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	// Case-insensitive uniqueness for tag names.
	tagName := options.Index().
		SetUnique(true).
		SetCollation(&options.Collation{Locale: "en", Strength: 2})

	specs := map[string][]mongo.IndexModel{
		repository.ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		},
		repository.ColAccounts: {
			{Keys: bson.D{{Key: "provider", Value: 1}, {Key: "provider_account_id", Value: 1}}, Options: unique},
		},
		repository.ColTags: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: tagName},
		},
		repository.ColVotes: {
			{Keys: bson.D{{Key: "author", Value: 1}, {Key: "action_id", Value: 1}, {Key: "action_type", Value: 1}}},
		},
		repository.ColCollections: {
			{Keys: bson.D{{Key: "author", Value: 1}, {Key: "question", Value: 1}}},
		},
		repository.ColAnswers: {
			{Keys: bson.D{{Key: "question", Value: 1}}},
		},
		repository.ColTagQuestions: {
			{Keys: bson.D{{Key: "tag", Value: 1}, {Key: "question", Value: 1}}},
		},
		repository.ColQuestions: {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
