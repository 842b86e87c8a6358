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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cart relies on a unique index over (user_id, cart_key); the duplicate-key
// error is what turns a concurrent cross-shop add into a clean conflict.
var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "cart")

type addToCartRequest struct {
	Product_id string `json:"product_id" validate:"required"`
	Cart_key   string `json:"cart_key" validate:"required,eq=food|eq=grocery"`
	Quantity   int    `json:"quantity" validate:"min=0"`
	Replace    bool   `json:"replace"`
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var cart models.Cart
		filter := bson.M{"user_id": c.GetString("uid"), "cart_key": c.Param("cart_key")}
		err := cartCollection.FindOne(ctx, filter).Decode(&cart)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusOK, models.Cart{
				User_id:  c.GetString("uid"),
				Cart_key: c.Param("cart_key"),
				Items:    []models.CartItem{},
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCart puts a product into the user's food or grocery cart. A food cart
// is pinned to one shop: adding from a second shop answers 409 unless the
// caller sets replace, which swaps the whole cart for the new item.
func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req addToCartRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		var product models.Product
		if err := productCollection.FindOne(ctx, bson.M{"product_id": req.Product_id}).Decode(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product was not found"})
			return
		}
		if !product.In_stock {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product is out of stock"})
			return
		}

		userId := c.GetString("uid")
		item := models.CartItem{
			Product_id: product.Product_id,
			Shop_id:    *product.Shop_id,
			Name:       *product.Name,
			Unit_price: *product.Price,
			Quantity:   req.Quantity,
		}

		if req.Replace {
			cart := models.Cart{
				ID:         primitive.NewObjectID(),
				User_id:    userId,
				Cart_key:   req.Cart_key,
				Shop_id:    item.Shop_id,
				Items:      []models.CartItem{item},
				Updated_at: time.Now(),
			}
			cart.Cart_id = cart.ID.Hex()
			upsert := true
			opts := options.ReplaceOptions{Upsert: &upsert}
			_, err := cartCollection.ReplaceOne(ctx, bson.M{"user_id": userId, "cart_key": req.Cart_key}, cart, &opts)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "cart was not replaced"})
				return
			}
			c.JSON(http.StatusOK, cart)
			return
		}

		// a food cart only ever holds one shop; grocery carts may mix
		cartFilter := bson.M{"user_id": userId, "cart_key": req.Cart_key}
		if req.Cart_key == models.CartKeyFood {
			cartFilter["shop_id"] = item.Shop_id
		}

		// first try bumping an existing line
		incFilter := bson.M{}
		for k, v := range cartFilter {
			incFilter[k] = v
		}
		incFilter["items.product_id"] = item.Product_id
		result, err := cartCollection.UpdateOne(ctx, incFilter, bson.D{
			{Key: "$inc", Value: bson.D{{Key: "items.$.quantity", Value: req.Quantity}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		if result.ModifiedCount == 0 {
			// new line; the upsert carries the shop pin, so an existing cart
			// for another shop surfaces as a duplicate key
			cartId := primitive.NewObjectID()
			setOnInsert := bson.D{
				{Key: "_id", Value: cartId},
				{Key: "cart_id", Value: cartId.Hex()},
			}
			if req.Cart_key != models.CartKeyFood {
				// the food filter already pins shop_id, so the upsert
				// inserts it from there
				setOnInsert = append(setOnInsert, bson.E{Key: "shop_id", Value: item.Shop_id})
			}
			upsert := true
			opts := options.UpdateOptions{Upsert: &upsert}
			_, err = cartCollection.UpdateOne(ctx, cartFilter, bson.D{
				{Key: "$push", Value: bson.D{{Key: "items", Value: item}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
				{Key: "$setOnInsert", Value: setOnInsert},
			}, &opts)
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "your cart has items from another shop; pass replace to start over"})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
				return
			}
		}

		var cart models.Cart
		if err := cartCollection.FindOne(ctx, bson.M{"user_id": userId, "cart_key": req.Cart_key}).Decode(&cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// UpdateCartItem sets a line quantity; zero removes the line.
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Product_id string `json:"product_id" validate:"required"`
			Cart_key   string `json:"cart_key" validate:"required,eq=food|eq=grocery"`
			Quantity   int    `json:"quantity" validate:"min=0"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		userId := c.GetString("uid")
		if body.Quantity == 0 {
			result, err := cartCollection.UpdateOne(ctx,
				bson.M{"user_id": userId, "cart_key": body.Cart_key},
				bson.D{
					{Key: "$pull", Value: bson.D{{Key: "items", Value: bson.D{{Key: "product_id", Value: body.Product_id}}}}},
					{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
				})
			if err != nil || result.MatchedCount == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "item removed"})
			return
		}

		result, err := cartCollection.UpdateOne(ctx,
			bson.M{"user_id": userId, "cart_key": body.Cart_key, "items.product_id": body.Product_id},
			bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "items.$.quantity", Value: body.Quantity},
					{Key: "updated_at", Value: time.Now()},
				}},
			})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
	}
}

func clearCart(ctx context.Context, userId string, cartKey string) error {
	_, err := cartCollection.DeleteOne(ctx, bson.M{"user_id": userId, "cart_key": cartKey})
	return err
}
