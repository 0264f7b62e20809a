package dto

type CreateUserDTO struct {
	Name     string `json:"name"     validate:"required,min=1,max=50"`
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Image    string `json:"image"    validate:"omitempty,url"`
}

type GetUserDTO struct {
	UserID string `json:"userId" validate:"required,objectid"`
	PageDTO
}
