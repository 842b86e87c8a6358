package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DiscountPercent = "PERCENT"
	DiscountFlat    = "FLAT"
)

// Coupon is admin-curated reference data; checkout only reads it.
type Coupon struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `json:"name" validate:"required,min=2,max=30"`
	Discount      float64            `json:"discount" validate:"required,gt=0"`
	Discount_type string             `json:"discount_type" validate:"required,eq=PERCENT|eq=FLAT"`
	Desc          string             `json:"desc"`
	Min_order     float64            `json:"min_order" validate:"min=0"`
	Applicable_to string             `json:"applicable_to" validate:"required,eq=food|eq=grocery|eq=both"`
	Created_at    time.Time          `json:"created_at"`
	Coupon_id     string             `json:"coupon_id"`
}
