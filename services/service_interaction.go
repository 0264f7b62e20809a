package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/database"
	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/internal/guard"
	"devflow_workspace/internal/repository"
	"devflow_workspace/model"
)

// CreateInteraction records a user action against a question or answer.
// Runs in a transaction so reputation accounting can join it later.
func CreateInteraction(ctx context.Context, db *mongo.Database, body dto.CreateInteractionDTO, sess *authctx.Session) (*model.Interaction, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return nil, err
	}

	actionID, err := bson.ObjectIDFromHex(body.ActionID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"actionId": {"must be a valid id"}})
	}
	authorID, err := bson.ObjectIDFromHex(body.AuthorID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"authorId": {"must be a valid id"}})
	}

	result, err := database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		interaction, err := repository.InsertInteraction(ctx, db, model.Interaction{
			User:       sess.UserID,
			Author:     authorID,
			Action:     body.Action,
			ActionID:   actionID,
			ActionType: body.ActionTarget,
		})
		if err != nil {
			return nil, err
		}
		return &interaction, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Interaction), nil
}
