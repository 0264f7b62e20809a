package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/guard"
	"devflow_workspace/internal/repository"
	"devflow_workspace/model"
)

// ListAccounts returns every account (GET /api/accounts).
func ListAccounts(ctx context.Context, db *mongo.Database) ([]model.Account, error) {
	return repository.FindAllAccounts(ctx, db)
}

// CreateAccount creates a provider account, rejecting duplicates on
// (provider, providerAccountId).
func CreateAccount(ctx context.Context, db *mongo.Database, body dto.CreateAccountDTO) (*model.Account, error) {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	userID, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"userId": {"must be a valid id"}})
	}

	if _, err := repository.FindAccountByProvider(ctx, db, body.Provider, body.ProviderAccountID); err == nil {
		return nil, apperr.Conflict("an account with the same provider already exists")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	account, err := repository.InsertAccount(ctx, db, model.Account{
		UserID:            userID,
		Name:              body.Name,
		Image:             body.Image,
		Password:          body.Password,
		Provider:          body.Provider,
		ProviderAccountID: body.ProviderAccountID,
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}
