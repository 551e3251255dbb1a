package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, users store.UserStore) {
	incomingRoutes.POST("/api/users/register", controller.Register(users))
	incomingRoutes.POST("/api/users/login", controller.Login(users))
	incomingRoutes.GET("/api/users/me", middleware.Authentication(), controller.Me(users))
}
