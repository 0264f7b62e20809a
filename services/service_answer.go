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

// CreateAnswer inserts the answer and bumps the parent question's answer
// counter in one transaction.
func CreateAnswer(ctx context.Context, db *mongo.Database, body dto.CreateAnswerDTO, sess *authctx.Session) (*model.Answer, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return nil, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	result, err := database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		_, err := repository.FindQuestionByID(ctx, db, questionID)
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Question")
		}
		if err != nil {
			return nil, err
		}

		answer, err := repository.InsertAnswer(ctx, db, model.Answer{
			Author:   sess.UserID,
			Question: questionID,
			Content:  body.Content,
		})
		if err != nil {
			return nil, err
		}

		if err := repository.IncQuestionAnswers(ctx, db, questionID, 1); err != nil {
			return nil, err
		}
		return &answer, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Answer), nil
}

type AnswersPage struct {
	Answers []model.Answer `json:"answers"`
	IsNext  bool           `json:"isNext"`
}

// GetAnswers lists a question's answers.
func GetAnswers(ctx context.Context, db *mongo.Database, body dto.GetAnswersDTO) (*AnswersPage, error) {
	body.Norm()
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	var sort bson.D
	switch body.Filter {
	case "latest":
		sort = bson.D{{Key: "created_at", Value: -1}}
	case "oldest":
		sort = bson.D{{Key: "created_at", Value: 1}}
	case "popular":
		sort = bson.D{{Key: "upvotes", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	filter := bson.M{"question": questionID}
	total, err := repository.CountAnswers(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	answers, err := repository.FindAnswers(ctx, db, filter, sort, body.Skip(), body.Limit())
	if err != nil {
		return nil, err
	}

	return &AnswersPage{
		Answers: answers,
		IsNext:  IsNext(total, body.Skip(), len(answers)),
	}, nil
}
