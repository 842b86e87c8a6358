package controllers

import (
	"context"
	"net/http"
	"time"

	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetDeliveryBoys() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := deliveryBoyCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing delivery boys"})
			return
		}
		var allBoys []models.DeliveryBoy
		if err := cursor.All(ctx, &allBoys); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing delivery boys"})
			return
		}
		for i := range allBoys {
			allBoys[i].Password = nil
			allBoys[i].Token = nil
			allBoys[i].Refresh_Token = nil
		}
		c.JSON(http.StatusOK, allBoys)
	}
}

// SettleOutstanding reconciles a courier's collected cash: zero the running
// total and flip every unsettled entry, in one document update so the two
// can never disagree.
func SettleOutstanding() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		boyId := c.Param("delivery_boy_id")
		now := time.Now()

		filter := bson.M{
			"delivery_boy_id":             boyId,
			"outstanding_payments.status": models.PaymentUnsettled,
		}
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "outstanding_amount", Value: 0},
			{Key: "outstanding_payments.$[p].status", Value: models.PaymentSettled},
			{Key: "outstanding_payments.$[p].settled_at", Value: now},
			{Key: "updated_at", Value: now},
		}}}
		arrayFilters := options.ArrayFilters{
			Filters: []interface{}{bson.M{"p.status": models.PaymentUnsettled}},
		}
		result, err := deliveryBoyCollection.UpdateOne(ctx, filter, update,
			options.Update().SetArrayFilters(arrayFilters))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
			return
		}
		if result.MatchedCount == 0 {
			var boy models.DeliveryBoy
			if err := deliveryBoyCollection.FindOne(ctx, bson.M{"delivery_boy_id": boyId}).Decode(&boy); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "delivery boy not found"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": "no unsettled payments to clear"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "outstanding payments settled"})
	}
}

// GetMonthlyOrderStats groups a month's orders by delivery status.
func GetMonthlyOrderStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		month, err := time.Parse("2006-01", c.Param("month"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month format, expected YYYY-MM"})
			return
		}
		start := month
		end := month.AddDate(0, 1, 0)

		match := bson.D{{Key: "$match", Value: bson.D{{Key: "created_at", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}}}}}
		group := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$delivery_status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}}

		cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{match, group})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while aggregating orders"})
			return
		}
		var stats []bson.M
		if err := cursor.All(ctx, &stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while aggregating orders"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetCommissionReport sums courier commissions earned in a date range.
func GetCommissionReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		startDate, err := time.Parse("2006-01-02", c.Param("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date format"})
			return
		}
		endDate, err := time.Parse("2006-01-02", c.Param("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date format"})
			return
		}

		unwind := bson.D{{Key: "$unwind", Value: "$commission_history"}}
		match := bson.D{{Key: "$match", Value: bson.D{
			{Key: "commission_history.earned_at", Value: bson.D{{Key: "$gte", Value: startDate}, {Key: "$lte", Value: endDate.AddDate(0, 0, 1)}}},
		}}}
		group := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$delivery_boy_id"},
			{Key: "name", Value: bson.D{{Key: "$first", Value: "$name"}}},
			{Key: "orders_delivered", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "commission_total", Value: bson.D{{Key: "$sum", Value: "$commission_history.amount"}}},
		}}}
		sort := bson.D{{Key: "$sort", Value: bson.D{{Key: "commission_total", Value: -1}}}}

		cursor, err := deliveryBoyCollection.Aggregate(ctx, mongo.Pipeline{unwind, match, group, sort})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while aggregating commissions"})
			return
		}
		var report []bson.M
		if err := cursor.All(ctx, &report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while aggregating commissions"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// BroadcastPromo sends a promotional notification to every customer.
func BroadcastPromo() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Message string `json:"message" validate:"required,min=3"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		cursor, err := userCollection.Find(ctx, bson.M{"user_role": models.RoleUser})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}
		var users []models.User
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}
		for _, user := range users {
			Notify(user.User_id, models.RoleUser, body.Message, nil)
		}
		c.JSON(http.StatusOK, gin.H{"message": "promotion sent", "recipients": len(users)})
	}
}
