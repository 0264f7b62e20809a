package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/internal/guard"
	"devflow_workspace/internal/repository"
	"devflow_workspace/model"
)

// ToggleSaveQuestion flips the caller's bookmark on a question. Deliberately
// not transactional: the reference behavior is query-then-write on a single
// document, and two concurrent toggles from the same caller can race.
func ToggleSaveQuestion(ctx context.Context, db *mongo.Database, body dto.CollectionBaseDTO, sess *authctx.Session) (dto.SavedResponse, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return dto.SavedResponse{}, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return dto.SavedResponse{}, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	if _, err := repository.FindQuestionByID(ctx, db, questionID); err != nil {
		if err == mongo.ErrNoDocuments {
			return dto.SavedResponse{}, apperr.NotFound("Question")
		}
		return dto.SavedResponse{}, err
	}

	existing, err := repository.FindCollection(ctx, db, sess.UserID, questionID)
	if err != nil {
		return dto.SavedResponse{}, err
	}

	if existing != nil {
		if err := repository.DeleteCollection(ctx, db, existing.ID); err != nil {
			return dto.SavedResponse{}, err
		}
		return dto.SavedResponse{Saved: false}, nil
	}

	if err := repository.InsertCollection(ctx, db, model.Collection{
		Author:   sess.UserID,
		Question: questionID,
	}); err != nil {
		return dto.SavedResponse{}, err
	}
	return dto.SavedResponse{Saved: true}, nil
}

// HasSavedQuestion reports whether the caller bookmarked a question.
func HasSavedQuestion(ctx context.Context, db *mongo.Database, body dto.CollectionBaseDTO, sess *authctx.Session) (dto.SavedResponse, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return dto.SavedResponse{}, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return dto.SavedResponse{}, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	existing, err := repository.FindCollection(ctx, db, sess.UserID, questionID)
	if err != nil {
		return dto.SavedResponse{}, err
	}
	return dto.SavedResponse{Saved: existing != nil}, nil
}

type SavedQuestionsPage struct {
	Collections []bson.M `json:"collections"`
	IsNext      bool     `json:"isNext"`
}

// GetSavedQuestions lists the caller's bookmarks joined with their questions.
func GetSavedQuestions(ctx context.Context, db *mongo.Database, page dto.PageDTO, sess *authctx.Session) (*SavedQuestionsPage, error) {
	page.Norm()
	sess, err := guard.Check(page, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return nil, err
	}

	var sort bson.D
	switch page.Filter {
	case "mostrecent":
		sort = bson.D{{Key: "question.created_at", Value: -1}}
	case "oldest":
		sort = bson.D{{Key: "question.created_at", Value: 1}}
	case "mostvoted":
		sort = bson.D{{Key: "question.upvotes", Value: -1}}
	case "mostviewed":
		sort = bson.D{{Key: "question.views", Value: -1}}
	case "mostanswered":
		sort = bson.D{{Key: "question.answers", Value: -1}}
	default:
		sort = bson.D{{Key: "question.created_at", Value: -1}}
	}

	pipeline := repository.SavedQuestionsPipeline(sess.UserID, page.Query)

	total, err := repository.CountSavedQuestions(ctx, db, pipeline)
	if err != nil {
		return nil, err
	}
	items, err := repository.FindSavedQuestions(ctx, db, pipeline, sort, page.Skip(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &SavedQuestionsPage{
		Collections: items,
		IsNext:      IsNextAggregate(total, page.Page, len(items)),
	}, nil
}
