package controllers

import (
	"context"
	"net/http"
	"time"

	"go-delivery-marketplace/database"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var couponCollection *mongo.Collection = database.OpenCollection(database.Client, "coupon")

func GetCoupons() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := couponCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing coupons"})
			return
		}
		var allCoupons []models.Coupon
		if err := cursor.All(ctx, &allCoupons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing coupons"})
			return
		}
		c.JSON(http.StatusOK, allCoupons)
	}
}

func GetCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var coupon models.Coupon
		err := couponCollection.FindOne(ctx, bson.M{"name": c.Param("name")}).Decode(&coupon)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

func CreateCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var coupon models.Coupon
		if err := c.BindJSON(&coupon); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&coupon); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if coupon.Discount_type == models.DiscountPercent && coupon.Discount > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percent discount cannot exceed 100"})
			return
		}

		count, err := couponCollection.CountDocuments(ctx, bson.M{"name": coupon.Name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the coupon name"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "coupon name already exists"})
			return
		}

		coupon.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		coupon.ID = primitive.NewObjectID()
		coupon.Coupon_id = coupon.ID.Hex()

		result, err := couponCollection.InsertOne(ctx, coupon)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "coupon was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteCoupon removes a coupon that no placed order references. Coupons
// have no update path; replace by delete-and-recreate.
func DeleteCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		name := c.Param("name")
		referenced, err := orderCollection.CountDocuments(ctx, bson.M{"coupon_name": name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking coupon usage"})
			return
		}
		if referenced > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "coupon is referenced by placed orders"})
			return
		}

		result, err := couponCollection.DeleteOne(ctx, bson.M{"name": name})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "coupon was not deleted"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "coupon deleted"})
	}
}
