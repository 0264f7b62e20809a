package dto

type CollectionBaseDTO struct {
	QuestionID string `json:"questionId" validate:"required,objectid"`
}

type SavedResponse struct {
	Saved bool `json:"saved"`
}
