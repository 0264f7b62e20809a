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

type TagsPage struct {
	Tags   []model.Tag `json:"tags"`
	IsNext bool        `json:"isNext"`
}

// GetTags lists tags.
func GetTags(ctx context.Context, db *mongo.Database, page dto.PageDTO) (*TagsPage, error) {
	page.Norm()
	if _, err := guard.Check(page, guard.Options{}); err != nil {
		return nil, err
	}

	filter := bson.M{}
	if page.Query != "" {
		filter["name"] = bson.M{"$regex": page.Query, "$options": "i"}
	}

	var sort bson.D
	switch page.Filter {
	case "popular":
		sort = bson.D{{Key: "questions", Value: -1}}
	case "recent":
		sort = bson.D{{Key: "created_at", Value: -1}}
	case "name":
		sort = bson.D{{Key: "name", Value: 1}}
	default:
		sort = bson.D{{Key: "questions", Value: -1}}
	}

	total, err := repository.CountTags(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	tags, err := repository.FindTags(ctx, db, filter, sort, page.Skip(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &TagsPage{
		Tags:   tags,
		IsNext: IsNext(total, page.Skip(), len(tags)),
	}, nil
}

type TagQuestionsPage struct {
	Tag       model.Tag        `json:"tag"`
	Questions []model.Question `json:"questions"`
	IsNext    bool             `json:"isNext"`
}

// GetTagQuestions lists the questions joined to a tag.
func GetTagQuestions(ctx context.Context, db *mongo.Database, tagID string, page dto.PageDTO) (*TagQuestionsPage, error) {
	page.Norm()
	if _, err := guard.Check(page, guard.Options{}); err != nil {
		return nil, err
	}

	id, err := bson.ObjectIDFromHex(tagID)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"tagId": {"must be a valid id"}})
	}

	tag, err := repository.FindTagByID(ctx, db, id)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("Tag")
	}
	if err != nil {
		return nil, err
	}

	questionIDs, err := repository.FindQuestionIDsForTag(ctx, db, id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": bson.M{"$in": questionIDs}}
	if page.Query != "" {
		filter["title"] = bson.M{"$regex": page.Query, "$options": "i"}
	}

	total, err := repository.CountQuestions(ctx, db, filter)
	if err != nil {
		return nil, err
	}
	questions, err := repository.FindQuestions(ctx, db, filter,
		bson.D{{Key: "created_at", Value: -1}}, page.Skip(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &TagQuestionsPage{
		Tag:       *tag,
		Questions: questions,
		IsNext:    IsNext(total, page.Skip(), len(questions)),
	}, nil
}
