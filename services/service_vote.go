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

type voteAdjust struct {
	VoteType string
	Change   int
}

type votePlan struct {
	Insert bool
	Delete bool
	Switch bool
	Adjust []voteAdjust
}

// planVote maps the (existing, requested) vote pair to the record mutation
// and counter adjustments that must apply together. existing is "" when the
// caller has not voted on the target yet.
func planVote(existing, requested string) votePlan {
	switch existing {
	case "":
		return votePlan{Insert: true, Adjust: []voteAdjust{{requested, 1}}}
	case requested:
		// Same vote again toggles it off.
		return votePlan{Delete: true, Adjust: []voteAdjust{{requested, -1}}}
	default:
		return votePlan{Switch: true, Adjust: []voteAdjust{{existing, -1}, {requested, 1}}}
	}
}

// CreateVote applies one vote transition for (caller, target). The vote
// record mutation and counter adjustments run in a single transaction.
func CreateVote(ctx context.Context, db *mongo.Database, body dto.CreateVoteDTO, sess *authctx.Session) error {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return err
	}

	targetID, err := bson.ObjectIDFromHex(body.TargetID)
	if err != nil {
		return apperr.Validation(map[string][]string{"targetId": {"must be a valid id"}})
	}

	_, err = database.WithTxn(ctx, db.Client(), func(ctx context.Context) (any, error) {
		existing, err := repository.FindVote(ctx, db, sess.UserID, targetID, body.TargetType)
		if err != nil {
			return nil, err
		}

		existingType := ""
		if existing != nil {
			existingType = existing.VoteType
		}
		plan := planVote(existingType, body.VoteType)

		switch {
		case plan.Insert:
			err = repository.InsertVote(ctx, db, model.Vote{
				Author:     sess.UserID,
				ActionID:   targetID,
				ActionType: body.TargetType,
				VoteType:   body.VoteType,
			})
		case plan.Delete:
			err = repository.DeleteVote(ctx, db, existing.ID)
		case plan.Switch:
			err = repository.UpdateVoteType(ctx, db, existing.ID, body.VoteType)
		}
		if err != nil {
			return nil, err
		}

		for _, adj := range plan.Adjust {
			matched, err := repository.IncVoteCount(ctx, db, body.TargetType, targetID, adj.VoteType, adj.Change)
			if err != nil {
				return nil, err
			}
			if !matched {
				return nil, apperr.NotFound(body.TargetType)
			}
		}
		return nil, nil
	})
	return err
}

// HasVoted reports the caller's current vote state on a target.
func HasVoted(ctx context.Context, db *mongo.Database, body dto.HasVotedDTO, sess *authctx.Session) (dto.HasVotedResponse, error) {
	sess, err := guard.Check(body, guard.Options{Authorize: true, Session: sess})
	if err != nil {
		return dto.HasVotedResponse{}, err
	}

	targetID, err := bson.ObjectIDFromHex(body.TargetID)
	if err != nil {
		return dto.HasVotedResponse{}, apperr.Validation(map[string][]string{"targetId": {"must be a valid id"}})
	}

	vote, err := repository.FindVote(ctx, db, sess.UserID, targetID, body.TargetType)
	if err != nil {
		return dto.HasVotedResponse{}, err
	}
	if vote == nil {
		return dto.HasVotedResponse{}, nil
	}

	return dto.HasVotedResponse{
		HasUpvoted:   vote.VoteType == model.VoteTypeUpvote,
		HasDownvoted: vote.VoteType == model.VoteTypeDownvote,
	}, nil
}
