package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"go-delivery-marketplace/database"
	"go-delivery-marketplace/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var notificationCollection *mongo.Collection = database.OpenCollection(database.Client, "notification")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

func sendMessageToAllClients(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling message:", err)
		return
	}
	for client := range clients {
		err := client.WriteMessage(websocket.TextMessage, messageBytes)
		if err != nil {
			log.Println("error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}

// Notify persists a notification and pushes it to connected clients.
// Best-effort: failures are logged and never fail the calling transition.
func Notify(recipientId string, recipientRole string, message string, orderId *string) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	notification := models.Notification{
		ID:             primitive.NewObjectID(),
		Recipient_id:   recipientId,
		Recipient_role: recipientRole,
		Message:        message,
		Order_id:       orderId,
		Is_read:        false,
		Created_at:     time.Now(),
	}
	notification.Notification_id = notification.ID.Hex()

	if _, err := notificationCollection.InsertOne(ctx, notification); err != nil {
		log.Println("notification insert failed:", err)
	}

	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(Message{Event: "notification", Payload: notification})
}

func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(50)
		cursor, err := notificationCollection.Find(ctx, bson.M{"recipient_id": c.GetString("uid")}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		var notifications []models.Notification
		if err := cursor.All(ctx, &notifications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{
			"notification_id": c.Param("notification_id"),
			"recipient_id":    c.GetString("uid"),
		}
		result, err := notificationCollection.UpdateOne(ctx, filter, bson.D{
			{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "notification update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
	}
}
