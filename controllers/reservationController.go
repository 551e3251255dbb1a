package controllers

import (
	"context"
	"net/http"

	"smart-restaurant/middleware"
	"smart-restaurant/models"
	"smart-restaurant/store"

	"github.com/gin-gonic/gin"
)

// CreateReservation books a table slot. The pre-check gives the friendly
// conflict message; the unique index on (date, time, table) catches the
// concurrent request that passes the pre-check at the same moment.
func CreateReservation(reservations store.ReservationStore, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var r models.Reservation
		if err := c.BindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := validate.Struct(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		taken, err := reservations.SlotTaken(ctx, r.Date, r.Time, r.Table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reservation failed"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Table already booked!"})
			return
		}

		r.Status = models.ReservationStatusPending
		r.UserID = middleware.GetUID(c)

		if _, err := reservations.Insert(ctx, &r); err != nil {
			if err == store.ErrDuplicate {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Table already booked!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reservation failed"})
			return
		}

		hub.Broadcast("newReservation", r)
		c.JSON(http.StatusOK, gin.H{"message": "Reservation created"})
	}
}

func GetReservations(reservations store.ReservationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		all, err := reservations.ListAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while listing reservations"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func UpdateReservationStatus(reservations store.ReservationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		var req statusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if req.Status == "" {
			req.Status = models.ReservationStatusConfirmed
		}

		err := reservations.UpdateStatus(ctx, c.Param("id"), req.Status)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reservation update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reservation updated"})
	}
}

func DeleteReservation(reservations store.ReservationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		err := reservations.Delete(ctx, c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reservation delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted"})
	}
}
