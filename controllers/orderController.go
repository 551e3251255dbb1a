package controllers

import (
	"context"
	"log"
	"math"
	"net/http"

	"smart-restaurant/middleware"
	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

// CreateOrder records a customer order. Items and total are stored as
// supplied by the client; a total that disagrees with the line items is
// logged, not rejected, to keep the checkout contract unchanged.
func CreateOrder(orders store.OrderStore, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var sum float64
		for _, item := range order.Items {
			sum += item.Price * float64(item.Quantity)
		}
		if math.Abs(sum-order.Total) > 0.005 {
			log.Printf("[orders] client total %.2f disagrees with item sum %.2f", order.Total, sum)
		}

		if order.Status == "" {
			order.Status = models.OrderStatusInProgress
		}
		order.UserID = middleware.GetUID(c)

		id, err := orders.Insert(ctx, &order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order was not created"})
			return
		}

		hub.Broadcast("newOrder", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order created", "insertedId": id})
	}
}

func GetOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		all, err := orders.ListAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus is permissive about the status string and idempotent:
// marking a completed order completed again is an ack, not an error.
func UpdateOrderStatus(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var req statusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if req.Status == "" {
			req.Status = models.OrderStatusCompleted
		}

		err := orders.UpdateStatus(ctx, c.Param("id"), req.Status)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

func DeleteOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		err := orders.Delete(ctx, c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
