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

type ReservationStore interface {
	// SlotTaken reports whether a reservation already holds the
	// (date, time, table) triple.
	SlotTaken(ctx context.Context, date, timeSlot, table string) (bool, error)
	// Insert returns ErrDuplicate when the slot's unique index rejects a
	// concurrent double-booking that slipped past SlotTaken.
	Insert(ctx context.Context, r *models.Reservation) (string, error)
	ListAll(ctx context.Context) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type mongoReservationStore struct {
	coll *mongo.Collection
}

func NewReservationStore(db *mongo.Database) ReservationStore {
	return &mongoReservationStore{coll: db.Collection("reservations")}
}

func (s *mongoReservationStore) SlotTaken(ctx context.Context, date, timeSlot, table string) (bool, error) {
	err := s.coll.FindOne(ctx, bson.M{"date": date, "time": timeSlot, "table": table}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *mongoReservationStore) Insert(ctx context.Context, r *models.Reservation) (string, error) {
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	return r.ID.Hex(), nil
}

func (s *mongoReservationStore) ListAll(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	reservations := []models.Reservation{}
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *mongoReservationStore) UpdateStatus(ctx context.Context, id string, status string) error {
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

func (s *mongoReservationStore) Delete(ctx context.Context, id string) error {
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
