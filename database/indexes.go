package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the handlers rely on. The
// (user_id, cart_key) index is what turns a concurrent cross-shop cart
// upsert into a clean duplicate-key conflict.
func EnsureIndexes(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		"cart":        {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "cart_key", Value: 1}}, Options: unique},
		"order":       {Keys: bson.D{{Key: "order_id", Value: 1}}, Options: unique},
		"user":        {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"deliveryBoy": {Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
		"coupon":      {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
	}
	for name, model := range indexes {
		if _, err := OpenCollection(client, name).Indexes().CreateOne(ctx, model); err != nil {
			log.Printf("index creation on %s failed: %v", name, err)
		}
	}
}
