package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devflow_workspace/model"
)

func InsertQuestion(ctx context.Context, db *mongo.Database, question model.Question) (model.Question, error) {
	now := time.Now().UTC()
	question.CreatedAt = now
	question.UpdatedAt = now
	if question.Tags == nil {
		question.Tags = []bson.ObjectID{}
	}

	res, err := db.Collection(ColQuestions).InsertOne(ctx, question)
	if err != nil {
		return model.Question{}, err
	}
	question.ID = res.InsertedID.(bson.ObjectID)
	return question, nil
}

func FindQuestionByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*model.Question, error) {
	var question model.Question
	err := db.Collection(ColQuestions).FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func UpdateQuestionContent(ctx context.Context, db *mongo.Database, id bson.ObjectID, title, content string) error {
	_, err := db.Collection(ColQuestions).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"title": title, "content": content, "updated_at": time.Now().UTC()},
	})
	return err
}

func PushQuestionTags(ctx context.Context, db *mongo.Database, id bson.ObjectID, tagIDs []bson.ObjectID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := db.Collection(ColQuestions).UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"tags": bson.M{"$each": tagIDs}},
	})
	return err
}

func PullQuestionTags(ctx context.Context, db *mongo.Database, id bson.ObjectID, tagIDs []bson.ObjectID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := db.Collection(ColQuestions).UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"tags": bson.M{"$in": tagIDs}},
	})
	return err
}

func IncQuestionAnswers(ctx context.Context, db *mongo.Database, id bson.ObjectID, change int) error {
	_, err := db.Collection(ColQuestions).UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"answers": change},
	})
	return err
}

func IncQuestionViews(ctx context.Context, db *mongo.Database, id bson.ObjectID) (matched bool, err error) {
	res, err := db.Collection(ColQuestions).UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"views": 1},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// IncVoteCount bumps the denormalized upvote/downvote counter on a question
// or answer. matched reports whether the target exists.
func IncVoteCount(ctx context.Context, db *mongo.Database, targetType string, targetID bson.ObjectID, voteType string, change int) (matched bool, err error) {
	coll := ColQuestions
	if targetType == model.VoteTargetAnswer {
		coll = ColAnswers
	}
	field := "upvotes"
	if voteType == model.VoteTypeDownvote {
		field = "downvotes"
	}

	res, err := db.Collection(coll).UpdateByID(ctx, targetID, bson.M{
		"$inc": bson.M{field: change},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func FindQuestions(ctx context.Context, db *mongo.Database, filter bson.M, sort bson.D, skip, limit int64) ([]model.Question, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := db.Collection(ColQuestions).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []model.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func CountQuestions(ctx context.Context, db *mongo.Database, filter bson.M) (int64, error) {
	return db.Collection(ColQuestions).CountDocuments(ctx, filter)
}
