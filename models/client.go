package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientName  string             `bson:"clientName" json:"clientName" validate:"required"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber" validate:"required"`
	Requirement string             `bson:"requirement" json:"requirement" validate:"required,oneof=Sale Purchase Rent Lease"`
	BudgetMin   string             `bson:"budgetMin,omitempty" json:"budgetMin,omitempty"`
	BudgetMax   string             `bson:"budgetMax,omitempty" json:"budgetMax,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
