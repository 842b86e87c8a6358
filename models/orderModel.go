package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delivery status values shared by the order and its line items.
const (
	StatusProcessing     = "Processing"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out For Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "ONLINE"
)

const (
	OrderTypeFood    = "food"
	OrderTypeGrocery = "grocery"
)

// OrderItem is a snapshot of the product at checkout time, so later catalog
// edits do not change what was ordered.
type OrderItem struct {
	Product_id string  `json:"product_id" validate:"required"`
	Shop_id    string  `json:"shop_id"`
	Name       string  `json:"name"`
	Unit_price float64 `json:"unit_price"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
	Status     string  `json:"status"`
}

// ShippingAddress is copied from the address book when the order is placed;
// address edits never rewrite past orders.
type ShippingAddress struct {
	Full_name string   `json:"full_name" validate:"required"`
	Phone     string   `json:"phone" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Area      string   `json:"area"`
	Landmark  *string  `json:"landmark"`
	Lat       *float64 `json:"lat"`
	Long      *float64 `json:"long"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id"`
	Order_id   string             `json:"order_id"`
	Order_code string             `json:"order_code"`
	User_id    string             `json:"user_id"`
	Order_type string             `json:"order_type" validate:"required,eq=food|eq=grocery"`

	Items            []OrderItem     `json:"items" validate:"required,min=1,dive"`
	Shipping_address ShippingAddress `json:"shipping_address" validate:"required"`

	Amount          float64 `json:"amount"` // pre-discount total
	Subtotal        float64 `json:"subtotal"`
	Delivery_charge float64 `json:"delivery_charge"`
	Tax             float64 `json:"tax"`
	Convenience_fee float64 `json:"convenience_fee"`
	Service_charge  float64 `json:"service_charge"`
	Discount        float64 `json:"discount"`
	Total_amount    float64 `json:"total_amount"` // net payable
	Coupon_name     *string `json:"coupon_name"`

	Delivery_status string  `json:"delivery_status"`
	Payment_status  string  `json:"payment_status"`
	Payment_method  string  `json:"payment_method" validate:"required,eq=COD|eq=ONLINE"`
	Delivery_boy_id *string `json:"delivery_boy_id"`

	Has_reviewed    bool    `json:"has_reviewed"`
	App_rating      *int    `json:"app_rating"`
	Delivery_rating *int    `json:"delivery_rating"`
	Overall_rating  *int    `json:"overall_rating"`
	Review_comment  *string `json:"review_comment"`

	Created_at time.Time `json:"created_at"`
	Updated_at time.Time `json:"updated_at"`
}
