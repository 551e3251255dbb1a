package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, orders store.OrderStore, hub *controller.Hub) {
	incomingRoutes.POST("/api/orders", middleware.Authentication(), controller.CreateOrder(orders, hub))

	admin := incomingRoutes.Group("/api/orders", middleware.Authentication(), middleware.RequireAdmin())
	admin.GET("", controller.GetOrders(orders))
	admin.PUT("/:id", controller.UpdateOrderStatus(orders))
	admin.DELETE("/:id", controller.DeleteOrder(orders))
}
