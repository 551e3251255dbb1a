package controllers

import (
	"context"
	"net/http"

	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func GetEvents(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		all, err := events.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while listing events"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func CreateEvent(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var event models.Event
		if err := c.BindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := events.Insert(ctx, &event)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Event was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event created", "id": id})
	}
}

type eventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

func UpdateEvent(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var patch eventPatch
		if err := c.BindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		err := events.Update(ctx, c.Param("id"), store.EventUpdate{
			Title:       patch.Title,
			Description: patch.Description,
			Date:        patch.Date,
		})
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Event update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
	}
}

func DeleteEvent(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		err := events.Delete(ctx, c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Event delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}
