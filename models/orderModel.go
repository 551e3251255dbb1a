package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"

	OrderStatusInProgress = "In Progress"
	OrderStatusCompleted  = "Completed"
)

type OrderItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price    float64 `bson:"price" json:"price"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	CustomerName string             `bson:"customerName" json:"customerName" validate:"required"`
	Contact      string             `bson:"contact" json:"contact" validate:"required"`
	OrderType    string             `bson:"orderType" json:"orderType" validate:"required,eq=pickup|eq=delivery"`
	Items        []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	UserID       string             `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
