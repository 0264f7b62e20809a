package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"devflow_workspace/configs"
	"devflow_workspace/database"
	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/guard"
	"devflow_workspace/internal/repository"
	"devflow_workspace/model"
)

const credentialsProvider = "credentials"

// SignUp creates a User and its credentials Account in one transaction and
// returns a signed token.
func SignUp(ctx context.Context, db *mongo.Database, cfg *configs.Config, body dto.SignUpDTO) (*dto.AuthResponse, error) {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	result, err := database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		if _, err := repository.FindUserByEmail(ctx, db, body.Email); err == nil {
			return nil, apperr.Conflict("User already exists")
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
		if _, err := repository.FindUserByUsername(ctx, db, body.Username); err == nil {
			return nil, apperr.Conflict("Username already exists")
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), 12)
		if err != nil {
			return nil, err
		}

		user, err := repository.InsertUser(ctx, db, model.User{
			Name:     body.Name,
			Username: body.Username,
			Email:    body.Email,
		})
		if err != nil {
			return nil, err
		}

		if _, err := repository.InsertAccount(ctx, db, model.Account{
			UserID:            user.ID,
			Name:              body.Name,
			Password:          string(hashed),
			Provider:          credentialsProvider,
			ProviderAccountID: body.Email,
		}); err != nil {
			return nil, err
		}

		return &user, nil
	})
	if err != nil {
		return nil, err
	}

	user := result.(*model.User)
	token, err := signToken(cfg, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// SignIn verifies credentials and returns a signed token.
func SignIn(ctx context.Context, db *mongo.Database, cfg *configs.Config, body dto.SignInDTO) (*dto.AuthResponse, error) {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	user, err := repository.FindUserByEmail(ctx, db, body.Email)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("User")
	}
	if err != nil {
		return nil, err
	}

	account, err := repository.FindAccountByProvider(ctx, db, credentialsProvider, body.Email)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Account")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(body.Password)); err != nil {
		return nil, &apperr.Error{Kind: apperr.KindUnauthorized, Message: "incorrect email or password"}
	}

	token, err := signToken(cfg, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func signToken(cfg *configs.Config, userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
