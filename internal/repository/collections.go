package repository

// Collection names, one place.
const (
	ColUsers        = "users"
	ColAccounts     = "accounts"
	ColQuestions    = "questions"
	ColAnswers      = "answers"
	ColTags         = "tags"
	ColTagQuestions = "tag_questions"
	ColVotes        = "votes"
	ColCollections  = "collections"
	ColInteractions = "interactions"
)
