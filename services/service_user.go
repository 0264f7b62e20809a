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

type UsersPage struct {
	Users  []model.User `json:"users"`
	IsNext bool         `json:"isNext"`
}

// GetUsers lists users; anonymous callers are allowed.
func GetUsers(ctx context.Context, db *mongo.Database, page dto.PageDTO) (*UsersPage, error) {
	page.Norm()
	if _, err := guard.Check(page, guard.Options{}); err != nil {
		return nil, err
	}

	filter := bson.M{}
	if page.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": page.Query, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": page.Query, "$options": "i"}},
		}
	}

	var sort bson.D
	switch page.Filter {
	case "newest":
		sort = bson.D{{Key: "created_at", Value: -1}}
	case "oldest":
		sort = bson.D{{Key: "created_at", Value: 1}}
	case "popular":
		sort = bson.D{{Key: "reputation", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	total, err := repository.CountUsers(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	users, err := repository.FindUsers(ctx, db, filter, sort, page.Skip(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &UsersPage{
		Users:  users,
		IsNext: IsNext(total, page.Skip(), len(users)),
	}, nil
}

type UserProfile struct {
	User           model.User `json:"user"`
	TotalQuestions int64      `json:"totalQuestions"`
	TotalAnswers   int64      `json:"totalAnswers"`
}

// GetUserByID returns a user with question/answer totals.
func GetUserByID(ctx context.Context, db *mongo.Database, body dto.GetUserDTO) (*UserProfile, error) {
	body.Norm()
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	userID, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"userId": {"must be a valid id"}})
	}

	user, err := repository.FindUserByID(ctx, db, userID)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("User")
	}
	if err != nil {
		return nil, err
	}

	totalQuestions, err := repository.CountQuestions(ctx, db, bson.M{"author": userID})
	if err != nil {
		return nil, err
	}
	totalAnswers, err := repository.CountAnswers(ctx, db, bson.M{"author": userID})
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		User:           *user,
		TotalQuestions: totalQuestions,
		TotalAnswers:   totalAnswers,
	}, nil
}

// GetUserQuestions lists the questions a user asked.
func GetUserQuestions(ctx context.Context, db *mongo.Database, body dto.GetUserDTO) (*QuestionsPage, error) {
	body.Norm()
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	userID, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"userId": {"must be a valid id"}})
	}

	filter := bson.M{"author": userID}
	total, err := repository.CountQuestions(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	questions, err := repository.FindQuestions(ctx, db, filter,
		bson.D{{Key: "created_at", Value: -1}}, body.Skip(), body.Limit())
	if err != nil {
		return nil, err
	}

	return &QuestionsPage{
		Questions: questions,
		IsNext:    IsNext(total, body.Skip(), len(questions)),
	}, nil
}

// GetUserAnswers lists the answers a user wrote.
func GetUserAnswers(ctx context.Context, db *mongo.Database, body dto.GetUserDTO) (*AnswersPage, error) {
	body.Norm()
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	userID, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"userId": {"must be a valid id"}})
	}

	filter := bson.M{"author": userID}
	total, err := repository.CountAnswers(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	answers, err := repository.FindAnswers(ctx, db, filter,
		bson.D{{Key: "created_at", Value: -1}}, body.Skip(), body.Limit())
	if err != nil {
		return nil, err
	}

	return &AnswersPage{
		Answers: answers,
		IsNext:  IsNext(total, body.Skip(), len(answers)),
	}, nil
}

// ListUsers returns every user (GET /api/users).
func ListUsers(ctx context.Context, db *mongo.Database) ([]model.User, error) {
	return repository.FindAllUsers(ctx, db)
}

// CreateUser creates a user, rejecting duplicate email or username.
func CreateUser(ctx context.Context, db *mongo.Database, body dto.CreateUserDTO) (*model.User, error) {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	if _, err := repository.FindUserByEmail(ctx, db, body.Email); err == nil {
		return nil, apperr.Conflict("User already exists")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}
	if _, err := repository.FindUserByUsername(ctx, db, body.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	user, err := repository.InsertUser(ctx, db, model.User{
		Name:     body.Name,
		Username: body.Username,
		Email:    body.Email,
		Image:    body.Image,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
