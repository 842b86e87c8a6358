package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentSettled   = "settled"
	PaymentUnsettled = "unsettled"
)

// CommissionEntry is appended once per delivered order.
type CommissionEntry struct {
	Order_id  string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Earned_at time.Time `json:"earned_at"`
}

// OutstandingPayment records cash a courier collected on delivery and has
// not yet remitted. Settlement flips status to settled.
type OutstandingPayment struct {
	Order_id     string     `json:"order_id"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	Collected_at time.Time  `json:"collected_at"`
	Settled_at   *time.Time `json:"settled_at"`
}

type DeliveryBoy struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         *string            `json:"name" validate:"required,min=2,max=100"`
	Phone        *string            `json:"phone" validate:"required"`
	Password     *string            `json:"password" validate:"required,min=6"`
	Is_available bool               `json:"is_available"`

	Commission_history   []CommissionEntry    `json:"commission_history"`
	Outstanding_amount   float64              `json:"outstanding_amount"`
	Outstanding_payments []OutstandingPayment `json:"outstanding_payments"`

	Token           *string   `json:"token"`
	Refresh_Token   *string   `json:"refresh_token"`
	Created_at      time.Time `json:"created_at"`
	Updated_at      time.Time `json:"updated_at"`
	Delivery_boy_id string    `json:"delivery_boy_id"`
}
