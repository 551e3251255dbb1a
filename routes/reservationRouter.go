package routes

import (
	controller "smart-restaurant/controllers"
	"smart-restaurant/middleware"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

func ReservationRoutes(incomingRoutes *gin.Engine, reservations store.ReservationStore, hub *controller.Hub) {
	incomingRoutes.POST("/api/reservations", middleware.Authentication(), controller.CreateReservation(reservations, hub))

	admin := incomingRoutes.Group("/api/reservations", middleware.Authentication(), middleware.RequireAdmin())
	admin.GET("", controller.GetReservations(reservations))
	admin.PUT("/:id", controller.UpdateReservationStatus(reservations))
	admin.DELETE("/:id", controller.DeleteReservation(reservations))
}
