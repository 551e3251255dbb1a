package store

import (
	"context"
	"time"

	"smart-restaurant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
}

type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	Insert(ctx context.Context, event *models.Event) (string, error)
	Update(ctx context.Context, id string, upd EventUpdate) error
	Delete(ctx context.Context, id string) error
}

type mongoEventStore struct {
	coll *mongo.Collection
}

func NewEventStore(db *mongo.Database) EventStore {
	return &mongoEventStore{coll: db.Collection("events")}
}

func (s *mongoEventStore) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *mongoEventStore) Insert(ctx context.Context, event *models.Event) (string, error) {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID.Hex(), nil
}

func (s *mongoEventStore) Update(ctx context.Context, id string, upd EventUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	var updateObj primitive.D
	if upd.Title != nil {
		updateObj = append(updateObj, bson.E{Key: "title", Value: *upd.Title})
	}
	if upd.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *upd.Description})
	}
	if upd.Date != nil {
		updateObj = append(updateObj, bson.E{Key: "date", Value: *upd.Date})
	}
	if len(updateObj) == 0 {
		return nil
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": objID}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoEventStore) Delete(ctx context.Context, id string) error {
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
