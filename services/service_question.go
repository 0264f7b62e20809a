package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/database"
	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
	"devflow_workspace/internal/authctx"
	"devflow_workspace/internal/guard"
	"devflow_workspace/internal/repository"
	"devflow_workspace/internal/utils"
	"devflow_workspace/model"
)

// tagDelta splits the requested tag names against the question's current
// tags. Comparison is case-insensitive; toRemove carries the tag documents
// so callers can decrement counts and delete join records.
func tagDelta(current []model.Tag, requested []string) (toAdd []string, toRemove []model.Tag) {
	requested = utils.NormalizeTags(requested)

	have := make(map[string]struct{}, len(current))
	for _, tag := range current {
		have[strings.ToLower(tag.Name)] = struct{}{}
	}
	want := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		want[name] = struct{}{}
	}

	for _, name := range requested {
		if _, ok := have[name]; !ok {
			toAdd = append(toAdd, name)
		}
	}
	for _, tag := range current {
		if _, ok := want[strings.ToLower(tag.Name)]; !ok {
			toRemove = append(toRemove, tag)
		}
	}
	return toAdd, toRemove
}

// CreateQuestion inserts the question, upserts its tags, links them through
// join records and patches the question's tag list, all in one transaction.
func CreateQuestion(ctx context.Context, db *mongo.Database, body dto.AskQuestionDTO, sess *authctx.Session) (*model.Question, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return nil, err
	}

	result, err := database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		question, err := repository.InsertQuestion(ctx, db, model.Question{
			Title:   body.Title,
			Content: body.Content,
			Author:  sess.UserID,
		})
		if err != nil {
			return nil, err
		}

		tagIDs := []bson.ObjectID{}
		links := []model.TagQuestion{}
		for _, name := range utils.NormalizeTags(body.Tags) {
			tag, err := repository.UpsertTag(ctx, db, name)
			if err != nil {
				return nil, err
			}
			tagIDs = append(tagIDs, tag.ID)
			links = append(links, model.TagQuestion{Tag: tag.ID, Question: question.ID})
		}

		if err := repository.InsertTagQuestions(ctx, db, links); err != nil {
			return nil, err
		}
		if err := repository.PushQuestionTags(ctx, db, question.ID, tagIDs); err != nil {
			return nil, err
		}

		question.Tags = tagIDs
		return &question, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Question), nil
}

// EditQuestion rewrites title/content when they changed and applies the tag
// delta (upsert-and-link added tags, decrement-and-unlink removed ones)
// inside one transaction. Only the original author may edit.
func EditQuestion(ctx context.Context, db *mongo.Database, body dto.EditQuestionDTO, sess *authctx.Session) (*model.Question, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return nil, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	result, err := database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		question, err := repository.FindQuestionByID(ctx, db, questionID)
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("Question")
		}
		if err != nil {
			return nil, err
		}
		if question.Author != sess.UserID {
			return nil, apperr.Forbidden("only the author can edit this question")
		}

		if question.Title != body.Title || question.Content != body.Content {
			if err := repository.UpdateQuestionContent(ctx, db, question.ID, body.Title, body.Content); err != nil {
				return nil, err
			}
			question.Title = body.Title
			question.Content = body.Content
		}

		currentTags, err := repository.FindTagsByIDs(ctx, db, question.Tags)
		if err != nil {
			return nil, err
		}
		toAdd, toRemove := tagDelta(currentTags, body.Tags)

		if len(toAdd) > 0 {
			addedIDs := []bson.ObjectID{}
			links := []model.TagQuestion{}
			for _, name := range toAdd {
				tag, err := repository.UpsertTag(ctx, db, name)
				if err != nil {
					return nil, err
				}
				addedIDs = append(addedIDs, tag.ID)
				links = append(links, model.TagQuestion{Tag: tag.ID, Question: question.ID})
			}
			if err := repository.InsertTagQuestions(ctx, db, links); err != nil {
				return nil, err
			}
			if err := repository.PushQuestionTags(ctx, db, question.ID, addedIDs); err != nil {
				return nil, err
			}
			question.Tags = append(question.Tags, addedIDs...)
		}

		if len(toRemove) > 0 {
			removedIDs := make([]bson.ObjectID, 0, len(toRemove))
			for _, tag := range toRemove {
				removedIDs = append(removedIDs, tag.ID)
			}
			if err := repository.DecTagQuestions(ctx, db, removedIDs); err != nil {
				return nil, err
			}
			if err := repository.DeleteTagQuestions(ctx, db, question.ID, removedIDs); err != nil {
				return nil, err
			}
			if err := repository.PullQuestionTags(ctx, db, question.ID, removedIDs); err != nil {
				return nil, err
			}

			removed := make(map[bson.ObjectID]struct{}, len(removedIDs))
			for _, id := range removedIDs {
				removed[id] = struct{}{}
			}
			kept := question.Tags[:0]
			for _, id := range question.Tags {
				if _, ok := removed[id]; !ok {
					kept = append(kept, id)
				}
			}
			question.Tags = kept
		}

		return question, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Question), nil
}

// GetQuestion fetches a single question.
func GetQuestion(ctx context.Context, db *mongo.Database, body dto.GetQuestionDTO) (*model.Question, error) {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return nil, err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	question, err := repository.FindQuestionByID(ctx, db, questionID)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Question")
	}
	if err != nil {
		return nil, err
	}
	return question, nil
}

// IncrementViews bumps a question's view counter.
func IncrementViews(ctx context.Context, db *mongo.Database, body dto.GetQuestionDTO) error {
	if _, err := guard.Check(body, guard.Options{}); err != nil {
		return err
	}

	questionID, err := bson.ObjectIDFromHex(body.QuestionID)
	if err != nil {
		return apperr.Validation(map[string][]string{"questionId": {"must be a valid id"}})
	}

	matched, err := repository.IncQuestionViews(ctx, db, questionID)
	if err != nil {
		return err
	}
	if !matched {
		return apperr.NotFound("Question")
	}
	return nil
}

type QuestionsPage struct {
	Questions []model.Question `json:"questions"`
	IsNext    bool             `json:"isNext"`
}

// GetQuestions lists questions with the shared paginated-query contract.
func GetQuestions(ctx context.Context, db *mongo.Database, page dto.PageDTO) (*QuestionsPage, error) {
	page.Norm()
	if _, err := guard.Check(page, guard.Options{}); err != nil {
		return nil, err
	}

	filter := bson.M{}
	if page.Query != "" {
		filter["title"] = bson.M{"$regex": page.Query, "$options": "i"}
	}

	var sort bson.D
	switch page.Filter {
	case "newest":
		sort = bson.D{{Key: "created_at", Value: -1}}
	case "unanswered":
		filter["answers"] = 0
		sort = bson.D{{Key: "created_at", Value: -1}}
	case "popular":
		sort = bson.D{{Key: "upvotes", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	total, err := repository.CountQuestions(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	questions, err := repository.FindQuestions(ctx, db, filter, sort, page.Skip(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &QuestionsPage{
		Questions: questions,
		IsNext:    IsNext(total, page.Skip(), len(questions)),
	}, nil
}
