package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CartKeyFood    = "food"
	CartKeyGrocery = "grocery"
)

type CartItem struct {
	Product_id string  `json:"product_id" validate:"required"`
	Shop_id    string  `json:"shop_id" validate:"required"`
	Name       string  `json:"name"`
	Unit_price float64 `json:"unit_price"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
}

// Cart holds one user's items for one storefront. A user has at most one
// food cart and one grocery cart; a food cart is pinned to a single shop.
type Cart struct {
	ID         primitive.ObjectID `bson:"_id"`
	User_id    string             `json:"user_id"`
	Cart_key   string             `json:"cart_key" validate:"required,eq=food|eq=grocery"`
	Shop_id    string             `json:"shop_id"`
	Items      []CartItem         `json:"items"`
	Updated_at time.Time          `json:"updated_at"`
	Cart_id    string             `json:"cart_id"`
}
