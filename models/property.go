package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Sector       string             `bson:"sector" json:"sector" validate:"required"`
	Title        string             `bson:"title" json:"title" validate:"required,oneof=JANTA LIG MIG HIG 26M 48M 60M 90M 52M 96M 120M Plot 'DDA MARKET' Others"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	PropertyType string             `bson:"propertyType" json:"propertyType" validate:"required,oneof=House Shop"`
	HouseNo      string             `bson:"houseNo,omitempty" json:"houseNo,omitempty" validate:"required_if=PropertyType House"`
	ShopNo       string             `bson:"shopNo,omitempty" json:"shopNo,omitempty" validate:"required_if=PropertyType Shop"`
	ShopSize     string             `bson:"shopSize,omitempty" json:"shopSize,omitempty" validate:"required_if=PropertyType Shop"`
	Block        string             `bson:"block,omitempty" json:"block,omitempty"`
	Pocket       string             `bson:"pocket,omitempty" json:"pocket,omitempty"`
	Floor        string             `bson:"floor,omitempty" json:"floor,omitempty" validate:"omitempty,oneof=0 1 2 3 4 5 Kothi Plot 'Ground Floor'"`
	BHK          string             `bson:"bhk" json:"bhk" validate:"required,oneof=1 2 3 4 5 RK 0"`
	RentOrSale   string             `bson:"rentOrSale" json:"rentOrSale" validate:"required,oneof=Rent Sale Lease"`
	HpOrFreehold string             `bson:"hpOrFreehold" json:"hpOrFreehold" validate:"required,oneof=HP Freehold Lease"`
	Reference    string             `bson:"reference,omitempty" json:"reference,omitempty"`
	Price        *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber" validate:"required"`
	Status       string             `bson:"status" json:"status" validate:"omitempty,oneof=Available Sold"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
