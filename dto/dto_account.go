package dto

type CreateAccountDTO struct {
	UserID            string `json:"userId"            validate:"required,objectid"`
	Name              string `json:"name"              validate:"required,min=1,max=50"`
	Image             string `json:"image"             validate:"omitempty,url"`
	Password          string `json:"password"          validate:"omitempty,min=6,max=100"`
	Provider          string `json:"provider"          validate:"required"`
	ProviderAccountID string `json:"providerAccountId" validate:"required"`
}
