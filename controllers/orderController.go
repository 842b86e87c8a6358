package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
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

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var cancelPolicy = services.CancelPolicyFromEnv(os.Getenv("CANCEL_WINDOW"))

type placeOrderRequest struct {
	Cart_key         string                  `json:"cart_key" validate:"required,eq=food|eq=grocery"`
	Payment_method   string                  `json:"payment_method" validate:"required,eq=COD|eq=ONLINE"`
	Address_id       string                  `json:"address_id"`
	Shipping_address *models.ShippingAddress `json:"shipping_address"`
	Coupon_name      string                  `json:"coupon_name"`
	Area_name        string                  `json:"area_name"`
}

// updateOrderStatus flips delivery_status and the matching line statuses
// only while the order is still in the expected state. The status filter is
// what makes concurrent staff actions safe: the loser matches nothing.
func updateOrderStatus(ctx context.Context, orderId string, from string, to string, extraSet bson.D) (bool, error) {
	set := bson.D{
		{Key: "delivery_status", Value: to},
		{Key: "items.$[it].status", Value: to},
		{Key: "updated_at", Value: time.Now()},
	}
	set = append(set, extraSet...)

	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{bson.M{"it.status": bson.M{"$ne": models.StatusCancelled}}},
	}
	opts := options.Update().SetArrayFilters(arrayFilters)

	result, err := orderCollection.UpdateOne(ctx,
		bson.M{"order_id": orderId, "delivery_status": from},
		bson.D{{Key: "$set", Value: set}},
		opts,
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func notifySellers(ctx context.Context, order models.Order) {
	seen := map[string]bool{}
	for _, item := range order.Items {
		if seen[item.Shop_id] {
			continue
		}
		seen[item.Shop_id] = true
		var shop models.Shop
		if err := shopCollection.FindOne(ctx, bson.M{"shop_id": item.Shop_id}).Decode(&shop); err != nil {
			log.Println("seller lookup failed for shop", item.Shop_id, ":", err)
			continue
		}
		orderId := order.Order_id
		Notify(shop.Seller_id, models.RoleSeller,
			fmt.Sprintf("new order %s received", order.Order_code), &orderId)
	}
}

// PlaceOrder turns the cart into an order. Validation failures create no
// partial order; the cart is cleared only after the insert succeeds.
func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req placeOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		userId := c.GetString("uid")

		var cart models.Cart
		err := cartCollection.FindOne(ctx, bson.M{"user_id": userId, "cart_key": req.Cart_key}).Decode(&cart)
		if err != nil || len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "your cart is empty"})
			return
		}

		// resolve the destination snapshot
		var shipping models.ShippingAddress
		if req.Shipping_address != nil {
			shipping = *req.Shipping_address
		} else {
			var user models.User
			if err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
				return
			}
			found := false
			for _, addr := range user.Addresses {
				if addr.Address_id == req.Address_id {
					shipping = models.ShippingAddress{
						Full_name: addr.Full_name,
						Phone:     addr.Phone,
						Address:   addr.Address,
						Area:      addr.Area,
						Landmark:  addr.Landmark,
						Lat:       addr.Lat,
						Long:      addr.Long,
					}
					found = true
					break
				}
			}
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address was not found"})
				return
			}
		}
		if validationErr := validate.Struct(&shipping); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		// snapshot current catalog state; any failed lookup blocks checkout
		items := make([]models.OrderItem, 0, len(cart.Items))
		cartItems := make([]models.CartItem, 0, len(cart.Items))
		shops := map[string]bool{}
		for _, ci := range cart.Items {
			var product models.Product
			if err := productCollection.FindOne(ctx, bson.M{"product_id": ci.Product_id}).Decode(&product); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s is no longer available", ci.Name)})
				return
			}
			if !product.In_stock {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s is out of stock", *product.Name)})
				return
			}
			items = append(items, models.OrderItem{
				Product_id: product.Product_id,
				Shop_id:    *product.Shop_id,
				Name:       *product.Name,
				Unit_price: *product.Price,
				Quantity:   ci.Quantity,
				Status:     models.StatusProcessing,
			})
			cartItems = append(cartItems, models.CartItem{
				Product_id: product.Product_id,
				Shop_id:    *product.Shop_id,
				Name:       *product.Name,
				Unit_price: *product.Price,
				Quantity:   ci.Quantity,
			})
			shops[*product.Shop_id] = true
		}
		if req.Cart_key == models.OrderTypeFood && len(shops) > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a food order must come from a single shop"})
			return
		}

		var coupon *models.Coupon
		if req.Coupon_name != "" {
			var found models.Coupon
			if err := couponCollection.FindOne(ctx, bson.M{"name": req.Coupon_name}).Decode(&found); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "coupon was not found"})
				return
			}
			coupon = &found
		}

		areaName := req.Area_name
		if areaName == "" {
			areaName = shipping.Area
		}
		deliveryCharge := services.DeliveryChargeFor(areaName, shipping.Lat, shipping.Long)
		price := services.PriceOrder(req.Cart_key, cartItems, deliveryCharge, coupon)

		paymentStatus := models.PaymentUnpaid
		if req.Payment_method == models.PaymentMethodOnline {
			paymentStatus = models.PaymentPaid
		}

		order := models.Order{
			ID:               primitive.NewObjectID(),
			Order_code:       helpers.NewOrderCode(),
			User_id:          userId,
			Order_type:       req.Cart_key,
			Items:            items,
			Shipping_address: shipping,
			Subtotal:         price.Subtotal,
			Delivery_charge:  price.DeliveryCharge,
			Tax:              price.Tax,
			Convenience_fee:  price.ConvenienceFee,
			Service_charge:   price.ServiceCharge,
			Discount:         price.Discount,
			Amount:           price.Amount,
			Total_amount:     price.TotalAmount,
			Delivery_status:  models.StatusProcessing,
			Payment_status:   paymentStatus,
			Payment_method:   req.Payment_method,
		}
		order.Order_id = order.ID.Hex()
		if coupon != nil {
			order.Coupon_name = &coupon.Name
		}
		order.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

		if _, err := orderCollection.InsertOne(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}
		if err := clearCart(ctx, userId, req.Cart_key); err != nil {
			log.Println("cart clear failed after checkout:", err)
		}
		notifySellers(ctx, order)

		c.JSON(http.StatusOK, order)
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		switch c.GetString("user_role") {
		case models.RoleAdmin:
			// admins see everything
		case models.RoleSeller:
			var user models.User
			if err := userCollection.FindOne(ctx, bson.M{"user_id": c.GetString("uid")}).Decode(&user); err != nil || user.Shop_id == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "no shop linked to this account"})
				return
			}
			filter["items.shop_id"] = *user.Shop_id
		default:
			filter["user_id"] = c.GetString("uid")
		}

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := orderCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []models.Order
		if err := cursor.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": c.Param("order_id")}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		role := c.GetString("user_role")
		if role == models.RoleUser && order.User_id != c.GetString("uid") {
			c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to view this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// MarkPreparing is the seller confirming the order and starting preparation.
func MarkPreparing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err := services.Transition(order.Delivery_status, models.StatusPreparing, order.Delivery_boy_id != nil, cancelPolicy); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ok, err := updateOrderStatus(ctx, orderId, order.Delivery_status, models.StatusPreparing, nil)
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
			fmt.Sprintf("order %s is being prepared", order.Order_code), &orderRef)
		c.JSON(http.StatusOK, gin.H{"message": "order marked preparing"})
	}
}

// CancelOrder is a staff/admin action gated by the cancellation window
// policy. No commission or outstanding entries exist for a cancelled order.
func CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err := services.Transition(order.Delivery_status, models.StatusCancelled, order.Delivery_boy_id != nil, cancelPolicy); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ok, err := updateOrderStatus(ctx, orderId, order.Delivery_status, models.StatusCancelled, nil)
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
			fmt.Sprintf("order %s was cancelled", order.Order_code), &orderRef)
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}

type reviewRequest struct {
	App_rating      int    `json:"app_rating" validate:"required,min=1,max=5"`
	Delivery_rating int    `json:"delivery_rating" validate:"required,min=1,max=5"`
	Overall_rating  int    `json:"overall_rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment"`
}

// SubmitReview records ratings once per delivered order. The has_reviewed
// filter makes a second submission a no-op detected as a conflict instead of
// a second write.
func SubmitReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req reviewRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		filter := bson.M{
			"order_id":        c.Param("order_id"),
			"user_id":         c.GetString("uid"),
			"delivery_status": models.StatusDelivered,
			"has_reviewed":    false,
		}
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "has_reviewed", Value: true},
			{Key: "app_rating", Value: req.App_rating},
			{Key: "delivery_rating", Value: req.Delivery_rating},
			{Key: "overall_rating", Value: req.Overall_rating},
			{Key: "review_comment", Value: req.Comment},
			{Key: "updated_at", Value: time.Now()},
		}}}
		result, err := orderCollection.UpdateOne(ctx, filter, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "review was not saved"})
			return
		}
		if result.MatchedCount == 0 {
			var order models.Order
			err := orderCollection.FindOne(ctx, bson.M{"order_id": c.Param("order_id"), "user_id": c.GetString("uid")}).Decode(&order)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			if order.Has_reviewed {
				c.JSON(http.StatusConflict, gin.H{"error": "order has already been reviewed"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": "only delivered orders can be reviewed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "review saved"})
	}
}
