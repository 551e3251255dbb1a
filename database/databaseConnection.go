package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client is set once by Connect and shared by every store.
var Client *mongo.Client

// Connect dials MongoDB with a bounded pool and short dial timeouts so a
// dead database fails startup fast instead of hanging request handlers.
func Connect(uri string) error {
	opts := options.Client().
		ApplyURI(uri).
		SetMinPoolSize(5).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(3 * time.Second).
		SetConnectTimeout(3 * time.Second).
		SetSocketTimeout(45 * time.Second)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	log.Println("[mongo] connected")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// Ping reports database reachability for the health endpoint.
func Ping(ctx context.Context) error {
	return Client.Ping(ctx, readpref.Primary())
}

func OpenDatabase(name string) *mongo.Database {
	return Client.Database(name)
}

func OpenCollection(db *mongo.Database, name string) *mongo.Collection {
	return db.Collection(name)
}

// EnsureIndexes creates the uniqueness constraints the handlers rely on:
// one account per email, and one reservation per (date, time, table) slot
// so concurrent double-bookings lose at the storage layer instead of both
// passing the application pre-check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("reservations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
			{Key: "table", Value: 1},
		},
		Options: unique,
	})
	return err
}
