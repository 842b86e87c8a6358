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

var shopCollection *mongo.Collection = database.OpenCollection(database.Client, "shop")
var productCollection *mongo.Collection = database.OpenCollection(database.Client, "product")

func GetShops() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if shopType := c.Query("shop_type"); shopType != "" {
			filter["shop_type"] = shopType
		}
		cursor, err := shopCollection.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing shops"})
			return
		}
		var allShops []models.Shop
		if err := cursor.All(ctx, &allShops); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing shops"})
			return
		}
		c.JSON(http.StatusOK, allShops)
	}
}

func CreateShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var shop models.Shop
		if err := c.BindJSON(&shop); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&shop); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		shop.Seller_id = c.GetString("uid")
		shop.Is_open = true
		shop.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		shop.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		shop.ID = primitive.NewObjectID()
		shop.Shop_id = shop.ID.Hex()

		result, err := shopCollection.InsertOne(ctx, shop)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "shop was not created"})
			return
		}
		// link the seller account to the shop
		userCollection.UpdateOne(ctx, bson.M{"user_id": shop.Seller_id}, bson.D{
			{Key: "$set", Value: bson.D{{Key: "shop_id", Value: shop.Shop_id}, {Key: "updated_at", Value: time.Now()}}},
		})
		c.JSON(http.StatusOK, result)
	}
}

func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if shopId := c.Query("shop_id"); shopId != "" {
			filter["shop_id"] = shopId
		}
		cursor, err := productCollection.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing products"})
			return
		}
		var allProducts []models.Product
		if err := cursor.All(ctx, &allProducts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing products"})
			return
		}
		c.JSON(http.StatusOK, allProducts)
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var product models.Product
		err := productCollection.FindOne(ctx, bson.M{"product_id": c.Param("product_id")}).Decode(&product)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&product); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var shop models.Shop
		if err := shopCollection.FindOne(ctx, bson.M{"shop_id": product.Shop_id}).Decode(&shop); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shop was not found"})
			return
		}
		if shop.Seller_id != c.GetString("uid") {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only add products to your own shop"})
			return
		}

		product.In_stock = true
		product.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		product.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		product.ID = primitive.NewObjectID()
		product.Product_id = product.ID.Hex()

		result, err := productCollection.InsertOne(ctx, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		productId := c.Param("product_id")
		var body struct {
			Name     *string  `json:"name"`
			Price    *float64 `json:"price"`
			Category *string  `json:"category"`
			In_stock *bool    `json:"in_stock"`
			Image    *string  `json:"image"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := productCollection.FindOne(ctx, bson.M{"product_id": productId}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		var shop models.Shop
		if err := shopCollection.FindOne(ctx, bson.M{"shop_id": product.Shop_id}).Decode(&shop); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "shop was not found"})
			return
		}
		if shop.Seller_id != c.GetString("uid") && c.GetString("user_role") != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only update your own products"})
			return
		}

		var updateObj primitive.D
		if body.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: body.Name})
		}
		if body.Price != nil {
			if *body.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "price", Value: body.Price})
		}
		if body.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: body.Category})
		}
		if body.In_stock != nil {
			updateObj = append(updateObj, bson.E{Key: "in_stock", Value: body.In_stock})
		}
		if body.Image != nil {
			updateObj = append(updateObj, bson.E{Key: "image", Value: body.Image})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		_, err := productCollection.UpdateOne(ctx, bson.M{"product_id": productId}, bson.D{{Key: "$set", Value: updateObj}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product updated"})
	}
}
