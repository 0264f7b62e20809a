package dto

type AskQuestionDTO struct {
	Title   string   `json:"title"   validate:"required,min=5,max=100"`
	Content string   `json:"content" validate:"required,min=100"`
	Tags    []string `json:"tags"    validate:"required,min=1,max=3,dive,min=1,max=30"`
}

type EditQuestionDTO struct {
	QuestionID string   `json:"questionId" validate:"required,objectid"`
	Title      string   `json:"title"      validate:"required,min=5,max=100"`
	Content    string   `json:"content"    validate:"required,min=100"`
	Tags       []string `json:"tags"       validate:"required,min=1,max=3,dive,min=1,max=30"`
}

type GetQuestionDTO struct {
	QuestionID string `json:"questionId" validate:"required,objectid"`
}
