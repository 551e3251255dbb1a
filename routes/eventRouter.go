package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func EventRoutes(incomingRoutes *gin.Engine, events store.EventStore) {
	incomingRoutes.GET("/api/events", controller.GetEvents(events))

	admin := incomingRoutes.Group("/api/events", middleware.Authentication(), middleware.RequireAdmin())
	admin.POST("", controller.CreateEvent(events))
	admin.PUT("/:id", controller.UpdateEvent(events))
	admin.DELETE("/:id", controller.DeleteEvent(events))
}
