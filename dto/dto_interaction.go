package dto

type CreateInteractionDTO struct {
	Action       string `json:"action"       validate:"required,oneof=view upvote downvote bookmark post edit delete search"`
	ActionID     string `json:"actionId"     validate:"required,objectid"`
	ActionTarget string `json:"actionTarget" validate:"required,oneof=question answer"`
	AuthorID     string `json:"authorId"     validate:"required,objectid"`
}
