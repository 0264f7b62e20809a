package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/model"
)

func InsertAccount(ctx context.Context, db *mongo.Database, account model.Account) (model.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	res, err := db.Collection(ColAccounts).InsertOne(ctx, account)
	if err != nil {
		return model.Account{}, err
	}
	account.ID = res.InsertedID.(bson.ObjectID)
	return account, nil
}

func FindAccountByProvider(ctx context.Context, db *mongo.Database, provider, providerAccountID string) (*model.Account, error) {
	var account model.Account
	err := db.Collection(ColAccounts).FindOne(ctx, bson.M{
		"provider":            provider,
		"provider_account_id": providerAccountID,
	}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func FindAllAccounts(ctx context.Context, db *mongo.Database) ([]model.Account, error) {
	cursor, err := db.Collection(ColAccounts).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []model.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
