package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser     = "USER"
	RoleSeller   = "SELLER"
	RoleDelivery = "DELIVERY"
	RoleAdmin    = "ADMIN"
)

// Address is a saved address-book entry. Orders copy it into a
// ShippingAddress snapshot instead of referencing it.
type Address struct {
	Address_id string   `json:"address_id"`
	Full_name  string   `json:"full_name" validate:"required"`
	Phone      string   `json:"phone" validate:"required"`
	Address    string   `json:"address" validate:"required"`
	Area       string   `json:"area"`
	Landmark   *string  `json:"landmark"`
	Lat        *float64 `json:"lat"`
	Long       *float64 `json:"long"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      *string            `json:"name" validate:"required,min=2,max=100"`
	Password  *string            `json:"password" validate:"required,min=6"`
	Email     *string            `json:"email" validate:"email,required"`
	Phone     *string            `json:"phone" validate:"required"`
	User_role *string            `json:"user_role" validate:"required,eq=USER|eq=SELLER|eq=DELIVERY|eq=ADMIN"`
	Shop_id   *string            `json:"shop_id"` // sellers only
	Addresses []Address          `json:"addresses"`

	Token         *string   `json:"token"`
	Refresh_Token *string   `json:"refresh_token"`
	Created_at    time.Time `json:"created_at"`
	Updated_at    time.Time `json:"updated_at"`
	User_id       string    `json:"user_id"`
}
