package store

import (
	"context"
	"time"

	"smart-restaurant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuUpdate carries the patchable fields; nil means leave unchanged.
type MenuUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
}

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) (string, error)
	Update(ctx context.Context, id string, upd MenuUpdate) error
	Delete(ctx context.Context, id string) error
}

type mongoMenuStore struct {
	coll *mongo.Collection
}

func NewMenuStore(db *mongo.Database) MenuStore {
	return &mongoMenuStore{coll: db.Collection("menu")}
}

func (s *mongoMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoMenuStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID.Hex(), nil
}

func (s *mongoMenuStore) Update(ctx context.Context, id string, upd MenuUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	var updateObj primitive.D
	if upd.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *upd.Category})
	}
	if upd.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *upd.Price})
	}
	if upd.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *upd.Description})
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

func (s *mongoMenuStore) Delete(ctx context.Context, id string) error {
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
