package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReservationStatusPending   = "Pending"
	ReservationStatusConfirmed = "Confirmed"
)

// Date is an ISO date string (2006-01-02) and Time an HH:MM string, the
// same shape the booking form submits. The (date, time, table) triple is
// unique per the reservations index.
type Reservation struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone" json:"phone" validate:"required"`
	Date      string             `bson:"date" json:"date" validate:"required"`
	Time      string             `bson:"time" json:"time" validate:"required"`
	Table     string             `bson:"table" json:"table" validate:"required"`
	Guests    int                `bson:"guests" json:"guests" validate:"required,min=1"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    string             `bson:"status" json:"status"`
	UserID    string             `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
