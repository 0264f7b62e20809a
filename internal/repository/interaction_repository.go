package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/model"
)

func InsertInteraction(ctx context.Context, db *mongo.Database, interaction model.Interaction) (model.Interaction, error) {
	interaction.CreatedAt = time.Now().UTC()

	res, err := db.Collection(ColInteractions).InsertOne(ctx, interaction)
	if err != nil {
		return model.Interaction{}, err
	}
	interaction.ID = res.InsertedID.(bson.ObjectID)
	return interaction, nil
}
