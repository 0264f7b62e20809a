package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devflow_workspace/model"
)

func InsertUser(ctx context.Context, db *mongo.Database, user model.User) (model.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := db.Collection(ColUsers).InsertOne(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

func FindUserByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := db.Collection(ColUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *mongo.Database, email string) (*model.User, error) {
	var user model.User
	err := db.Collection(ColUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUsername(ctx context.Context, db *mongo.Database, username string) (*model.User, error) {
	var user model.User
	err := db.Collection(ColUsers).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUsers(ctx context.Context, db *mongo.Database, filter bson.M, sort bson.D, skip, limit int64) ([]model.User, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := db.Collection(ColUsers).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func FindAllUsers(ctx context.Context, db *mongo.Database) ([]model.User, error) {
	cursor, err := db.Collection(ColUsers).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func CountUsers(ctx context.Context, db *mongo.Database, filter bson.M) (int64, error) {
	return db.Collection(ColUsers).CountDocuments(ctx, filter)
}
