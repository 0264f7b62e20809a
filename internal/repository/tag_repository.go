package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devflow_workspace/model"
)

// UpsertTag finds a tag by case-insensitive name and increments its question
// count, creating it with the given name when absent. Returns the resulting
// document.
func UpsertTag(ctx context.Context, db *mongo.Database, name string) (model.Tag, error) {
	now := time.Now().UTC()
	filter := bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
	update := bson.M{
		"$setOnInsert": bson.M{"name": name, "created_at": now},
		"$inc":         bson.M{"questions": 1},
		"$set":         bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var tag model.Tag
	if err := db.Collection(ColTags).FindOneAndUpdate(ctx, filter, update, opts).Decode(&tag); err != nil {
		return model.Tag{}, err
	}
	return tag, nil
}

// DecTagQuestions decrements the question count of every listed tag.
func DecTagQuestions(ctx context.Context, db *mongo.Database, tagIDs []bson.ObjectID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := db.Collection(ColTags).UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": tagIDs}},
		bson.M{"$inc": bson.M{"questions": -1}},
	)
	return err
}

func FindTagsByIDs(ctx context.Context, db *mongo.Database, ids []bson.ObjectID) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	cursor, err := db.Collection(ColTags).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func FindTags(ctx context.Context, db *mongo.Database, filter bson.M, sort bson.D, skip, limit int64) ([]model.Tag, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := db.Collection(ColTags).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func CountTags(ctx context.Context, db *mongo.Database, filter bson.M) (int64, error) {
	return db.Collection(ColTags).CountDocuments(ctx, filter)
}

func FindTagByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*model.Tag, error) {
	var tag model.Tag
	if err := db.Collection(ColTags).FindOne(ctx, bson.M{"_id": id}).Decode(&tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func InsertTagQuestions(ctx context.Context, db *mongo.Database, links []model.TagQuestion) error {
	if len(links) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, 0, len(links))
	for _, link := range links {
		link.CreatedAt = now
		docs = append(docs, link)
	}
	_, err := db.Collection(ColTagQuestions).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func DeleteTagQuestions(ctx context.Context, db *mongo.Database, questionID bson.ObjectID, tagIDs []bson.ObjectID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := db.Collection(ColTagQuestions).DeleteMany(ctx, bson.M{
		"tag":      bson.M{"$in": tagIDs},
		"question": questionID,
	})
	return err
}

// FindQuestionIDsForTag lists question ids joined to a tag.
func FindQuestionIDsForTag(ctx context.Context, db *mongo.Database, tagID bson.ObjectID) ([]bson.ObjectID, error) {
	cursor, err := db.Collection(ColTagQuestions).Find(ctx, bson.M{"tag": tagID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	links := []model.TagQuestion{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.Question)
	}
	return ids, nil
}
