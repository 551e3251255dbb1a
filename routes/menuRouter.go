package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine, menu store.MenuStore, cache *controller.MenuCache) {
	incomingRoutes.GET("/api/menu", controller.GetMenu(menu, cache))

	admin := incomingRoutes.Group("/api/menu", middleware.Authentication(), middleware.RequireAdmin())
	admin.POST("", controller.CreateMenuItem(menu))
	admin.PUT("/:id", controller.UpdateMenuItem(menu))
	admin.DELETE("/:id", controller.DeleteMenuItem(menu))
}
