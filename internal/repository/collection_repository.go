package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/model"
)

// FindCollection returns the caller's bookmark for a question, or (nil, nil).
func FindCollection(ctx context.Context, db *mongo.Database, author, questionID bson.ObjectID) (*model.Collection, error) {
	var col model.Collection
	err := db.Collection(ColCollections).FindOne(ctx, bson.M{
		"author":   author,
		"question": questionID,
	}).Decode(&col)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &col, nil
}

func InsertCollection(ctx context.Context, db *mongo.Database, col model.Collection) error {
	col.CreatedAt = time.Now().UTC()
	_, err := db.Collection(ColCollections).InsertOne(ctx, col)
	return err
}

func DeleteCollection(ctx context.Context, db *mongo.Database, id bson.ObjectID) error {
	_, err := db.Collection(ColCollections).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SavedQuestionsPipeline joins a user's bookmarks with their questions,
// question authors and tags. query filters on question title/content.
func SavedQuestionsPipeline(author bson.ObjectID, query string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"author": author}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColQuestions,
			"localField":   "question",
			"foreignField": "_id",
			"as":           "question",
		}}},
		{{Key: "$unwind", Value: "$question"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColUsers,
			"localField":   "question.author",
			"foreignField": "_id",
			"as":           "question.author",
		}}},
		{{Key: "$unwind", Value: "$question.author"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColTags,
			"localField":   "question.tags",
			"foreignField": "_id",
			"as":           "question.tags",
		}}},
	}

	if query != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"question.title": bson.M{"$regex": query, "$options": "i"}},
				bson.M{"question.content": bson.M{"$regex": query, "$options": "i"}},
			},
		}}})
	}

	return pipeline
}

// CountSavedQuestions runs the pipeline with a terminal $count stage.
func CountSavedQuestions(ctx context.Context, db *mongo.Database, pipeline mongo.Pipeline) (int64, error) {
	counted := append(mongo.Pipeline{}, pipeline...)
	counted = append(counted, bson.D{{Key: "$count", Value: "count"}})

	cursor, err := db.Collection(ColCollections).Aggregate(ctx, counted)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}

// FindSavedQuestions windows the pipeline and returns the joined documents.
func FindSavedQuestions(ctx context.Context, db *mongo.Database, pipeline mongo.Pipeline, sort bson.D, skip, limit int64) ([]bson.M, error) {
	windowed := append(mongo.Pipeline{}, pipeline...)
	windowed = append(windowed,
		bson.D{{Key: "$sort", Value: sort}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"question": 1, "author": 1}}},
	)

	cursor, err := db.Collection(ColCollections).Aggregate(ctx, windowed)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []bson.M{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
