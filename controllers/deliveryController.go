package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-delivery-marketplace/database"
	"go-delivery-marketplace/helpers"
	"go-delivery-marketplace/models"
	"go-delivery-marketplace/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var deliveryBoyCollection *mongo.Collection = database.OpenCollection(database.Client, "deliveryBoy")

func DeliverySignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var boy models.DeliveryBoy
		if err := c.BindJSON(&boy); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&boy); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := deliveryBoyCollection.CountDocuments(ctx, bson.M{"phone": boy.Phone})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking for the phone number"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "phone number already exists"})
			return
		}

		password := HashPassword(*boy.Password)
		boy.Password = &password
		boy.Is_available = true
		boy.Commission_history = []models.CommissionEntry{}
		boy.Outstanding_payments = []models.OutstandingPayment{}
		boy.Outstanding_amount = 0
		boy.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		boy.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		boy.ID = primitive.NewObjectID()
		boy.Delivery_boy_id = boy.ID.Hex()

		token, refreshToken, _ := helpers.GenerateAllTokens(*boy.Phone, *boy.Name, boy.Delivery_boy_id, models.RoleDelivery)
		boy.Token = &token
		boy.Refresh_Token = &refreshToken

		result, err := deliveryBoyCollection.InsertOne(ctx, boy)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delivery account was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeliveryLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var boy models.DeliveryBoy
		var foundBoy models.DeliveryBoy
		if err := c.BindJSON(&boy); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := deliveryBoyCollection.FindOne(ctx, bson.M{"phone": boy.Phone}).Decode(&foundBoy)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "phone or password is incorrect"})
			return
		}
		passwordIsValid, msg := VerifyPassword(*boy.Password, *foundBoy.Password)
		if !passwordIsValid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		token, refreshToken, _ := helpers.GenerateAllTokens(*foundBoy.Phone, *foundBoy.Name, foundBoy.Delivery_boy_id, models.RoleDelivery)
		helpers.UpdateDeliveryTokens(token, refreshToken, foundBoy.Delivery_boy_id)
		foundBoy.Token = &token
		foundBoy.Refresh_Token = &refreshToken
		c.JSON(http.StatusOK, foundBoy)
	}
}

// GetAvailableOrders lists unassigned orders any courier may claim.
func GetAvailableOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{
			"delivery_boy_id": nil,
			"delivery_status": bson.M{"$nin": []string{models.StatusDelivered, models.StatusCancelled}},
		}
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		cursor, err := orderCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing available orders"})
			return
		}
		var available []models.Order
		if err := cursor.All(ctx, &available); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing available orders"})
			return
		}
		c.JSON(http.StatusOK, available)
	}
}

// AcceptOrder claims an unassigned order. The unassigned check and the
// assignment are one conditional update, so of two concurrent accepts
// exactly one wins and the other gets a conflict.
func AcceptOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		boyId := c.GetString("uid")
		var boy models.DeliveryBoy
		if err := deliveryBoyCollection.FindOne(ctx, bson.M{"delivery_boy_id": boyId}).Decode(&boy); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "delivery account not found"})
			return
		}
		if !boy.Is_available {
			c.JSON(http.StatusConflict, gin.H{"error": "you are currently marked unavailable"})
			return
		}

		filter := bson.M{
			"order_id":        c.Param("order_id"),
			"delivery_boy_id": nil,
			"delivery_status": bson.M{"$nin": []string{models.StatusDelivered, models.StatusCancelled}},
		}
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "delivery_boy_id", Value: boyId},
			{Key: "updated_at", Value: time.Now()},
		}}}
		var order models.Order
		err := orderCollection.FindOneAndUpdate(ctx, filter, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusConflict, gin.H{"error": "order has already been taken"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order assignment failed"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// ConfirmPickup moves an assigned order to Out For Delivery.
func ConfirmPickup() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		boyId := c.GetString("uid")

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId, "delivery_boy_id": boyId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found among your deliveries"})
			return
		}
		if err := services.Transition(order.Delivery_status, models.StatusOutForDelivery, true, cancelPolicy); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ok, err := updateOrderStatus(ctx, orderId, order.Delivery_status, models.StatusOutForDelivery, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "order status changed, reload and retry"})
			return
		}
		orderRef := orderId
		Notify(order.User_id, models.RoleUser,
			fmt.Sprintf("order %s is out for delivery", order.Order_code), &orderRef)
		c.JSON(http.StatusOK, gin.H{"message": "order out for delivery"})
	}
}

// ConfirmDelivery completes the order: paid, commission accrued, and for COD
// an unsettled outstanding entry. The courier-side bookkeeping is a single
// update so the outstanding total and its entries cannot drift apart.
func ConfirmDelivery() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		boyId := c.GetString("uid")

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId, "delivery_boy_id": boyId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found among your deliveries"})
			return
		}
		if err := services.Transition(order.Delivery_status, models.StatusDelivered, true, cancelPolicy); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		extraSet := bson.D{{Key: "payment_status", Value: models.PaymentPaid}}
		ok, err := updateOrderStatus(ctx, orderId, order.Delivery_status, models.StatusDelivered, extraSet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "order status changed, reload and retry"})
			return
		}

		commission := services.CommissionForOrder(order)
		now := time.Now()
		push := bson.D{
			{Key: "commission_history", Value: models.CommissionEntry{
				Order_id:  orderId,
				Amount:    commission,
				Earned_at: now,
			}},
		}
		update := bson.D{{Key: "$push", Value: push}, {Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}}}
		if order.Payment_method == models.PaymentMethodCOD {
			push = append(push, bson.E{Key: "outstanding_payments", Value: models.OutstandingPayment{
				Order_id:     orderId,
				Amount:       commission,
				Status:       models.PaymentUnsettled,
				Collected_at: now,
			}})
			update = bson.D{
				{Key: "$push", Value: push},
				{Key: "$inc", Value: bson.D{{Key: "outstanding_amount", Value: commission}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}},
			}
		}
		if _, err := deliveryBoyCollection.UpdateOne(ctx, bson.M{"delivery_boy_id": boyId}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "commission update failed"})
			return
		}

		orderRef := orderId
		Notify(order.User_id, models.RoleUser,
			fmt.Sprintf("order %s has been delivered", order.Order_code), &orderRef)
		c.JSON(http.StatusOK, gin.H{"message": "order delivered", "commission": commission})
	}
}

func GetMyDeliveries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := orderCollection.Find(ctx, bson.M{"delivery_boy_id": c.GetString("uid")}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing deliveries"})
			return
		}
		var assigned []models.Order
		if err := cursor.All(ctx, &assigned); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing deliveries"})
			return
		}
		c.JSON(http.StatusOK, assigned)
	}
}

// GetDashboard aggregates the courier home screen numbers.
func GetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		boyId := c.GetString("uid")
		var boy models.DeliveryBoy
		if err := deliveryBoyCollection.FindOne(ctx, bson.M{"delivery_boy_id": boyId}).Decode(&boy); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "delivery account not found"})
			return
		}
		cursor, err := orderCollection.Find(ctx, bson.M{"delivery_boy_id": boyId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the dashboard"})
			return
		}
		var assigned []models.Order
		if err := cursor.All(ctx, &assigned); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the dashboard"})
			return
		}
		c.JSON(http.StatusOK, services.Dashboard(boy, assigned))
	}
}

func SetAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Is_available *bool `json:"is_available" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil || body.Is_available == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_available is required"})
			return
		}
		result, err := deliveryBoyCollection.UpdateOne(ctx,
			bson.M{"delivery_boy_id": c.GetString("uid")},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "is_available", Value: *body.Is_available},
				{Key: "updated_at", Value: time.Now()},
			}}})
		if err != nil || result.MatchedCount == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "availability update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
	}
}
