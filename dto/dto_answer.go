package dto

type CreateAnswerDTO struct {
	QuestionID string `json:"questionId" validate:"required,objectid"`
	Content    string `json:"content"    validate:"required,min=100"`
}

type GetAnswersDTO struct {
	QuestionID string `json:"questionId" validate:"required,objectid"`
	PageDTO
}
