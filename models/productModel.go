package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Shop struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" validate:"required,min=2,max=100"`
	Shop_type  *string            `json:"shop_type" validate:"required,eq=food|eq=grocery"`
	Seller_id  string             `json:"seller_id"`
	Area       *string            `json:"area"`
	Is_open    bool               `json:"is_open"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
	Shop_id    string             `json:"shop_id"`
}

type Product struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" validate:"required,min=2,max=100"`
	Price      *float64           `json:"price" validate:"required,gt=0"`
	Shop_id    *string            `json:"shop_id" validate:"required"`
	Category   *string            `json:"category"`
	In_stock   bool               `json:"in_stock"`
	Image      *string            `json:"image"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
	Product_id string             `json:"product_id"`
}
