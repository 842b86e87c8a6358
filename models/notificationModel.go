package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID              primitive.ObjectID `bson:"_id"`
	Recipient_id    string             `json:"recipient_id"`
	Recipient_role  string             `json:"recipient_role"`
	Message         string             `json:"message"`
	Order_id        *string            `json:"order_id"`
	Is_read         bool               `json:"is_read"`
	Created_at      time.Time          `json:"created_at"`
	Notification_id string             `json:"notification_id"`
}
