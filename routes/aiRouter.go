package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func AIRoutes(incomingRoutes *gin.Engine, menu store.MenuStore, profile *controller.TasteProfile) {
	ai := incomingRoutes.Group("/api/ai", middleware.Authentication())
	ai.GET("/recommend", controller.Recommend(menu, profile))
	ai.POST("/learn", controller.Learn(profile))
	ai.POST("/chat", controller.Chat())
}
