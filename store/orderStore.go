package store

import (
	"context"
	"time"

	"smart-restaurant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (string, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type mongoOrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) OrderStore {
	return &mongoOrderStore{coll: db.Collection("orders")}
}

func (s *mongoOrderStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, order); err != nil {
		return "", err
	}
	return order.ID.Hex(), nil
}

// ListAll returns orders newest first. The sort is presentation order for
// the admin dashboard, not a serialization guarantee.
func (s *mongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrderStore) UpdateStatus(ctx context.Context, id string, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": objID},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoOrderStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
