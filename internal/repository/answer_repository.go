package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devflow_workspace/model"
)

func InsertAnswer(ctx context.Context, db *mongo.Database, answer model.Answer) (model.Answer, error) {
	now := time.Now().UTC()
	answer.CreatedAt = now
	answer.UpdatedAt = now

	res, err := db.Collection(ColAnswers).InsertOne(ctx, answer)
	if err != nil {
		return model.Answer{}, err
	}
	answer.ID = res.InsertedID.(bson.ObjectID)
	return answer, nil
}

func FindAnswers(ctx context.Context, db *mongo.Database, filter bson.M, sort bson.D, skip, limit int64) ([]model.Answer, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := db.Collection(ColAnswers).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	answers := []model.Answer{}
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func CountAnswers(ctx context.Context, db *mongo.Database, filter bson.M) (int64, error) {
	return db.Collection(ColAnswers).CountDocuments(ctx, filter)
}
