package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account links a User to a sign-in provider. For the credentials provider
// ProviderAccountID is the email and Password holds the bcrypt hash.
type Account struct {
	ID                bson.ObjectID `json:"id"                bson:"_id,omitempty"`
	UserID            bson.ObjectID `json:"userId"            bson:"user_id"`
	Name              string        `json:"name"              bson:"name"`
	Image             string        `json:"image,omitempty"   bson:"image,omitempty"`
	Password          string        `json:"-"                 bson:"password,omitempty"`
	Provider          string        `json:"provider"          bson:"provider"`
	ProviderAccountID string        `json:"providerAccountId" bson:"provider_account_id"`
	CreatedAt         time.Time     `json:"createdAt"         bson:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt"         bson:"updated_at"`
}
