package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionForm is a public enquiry submission. It has no relation to leads.
type SuggestionForm struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	FormType     string             `bson:"formType" json:"formType"`
	Message      string             `bson:"message" json:"message"`
	Services     []string           `bson:"services" json:"services"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateSuggestionFormRequest carries a partial update; nil fields are untouched.
type UpdateSuggestionFormRequest struct {
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	FormType     *string   `json:"formType,omitempty"`
	Message      *string   `json:"message,omitempty"`
	Services     *[]string `json:"services,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
}
