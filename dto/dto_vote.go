package dto

type CreateVoteDTO struct {
	TargetID   string `json:"targetId"   validate:"required,objectid"`
	TargetType string `json:"targetType" validate:"required,oneof=question answer"`
	VoteType   string `json:"voteType"   validate:"required,oneof=upvote downvote"`
}

type HasVotedDTO struct {
	TargetID   string `json:"targetId"   validate:"required,objectid"`
	TargetType string `json:"targetType" validate:"required,oneof=question answer"`
}

type HasVotedResponse struct {
	HasUpvoted   bool `json:"hasUpvoted"`
	HasDownvoted bool `json:"hasDownvoted"`
}
