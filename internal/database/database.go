package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mostafaAnwar9/EmotionDetection/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// DB wraps the Mongo database and exposes the two collections this service
// owns.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a Mongo connection, verifies it with a ping, and ensures the
// unique email index backing duplicate-registration detection.
func Connect(cfg *config.AppConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	d := &DB{client: client, db: client.Database(cfg.Mongo.Name)}
	if err := d.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return d, nil
}

// Users returns the user accounts collection.
func (d *DB) Users() *mongo.Collection { return d.db.Collection("users") }

// Predictions returns the prediction records collection.
func (d *DB) Predictions() *mongo.Collection { return d.db.Collection("predictions") }

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error { return d.client.Disconnect(ctx) }

func (d *DB) ensureIndexes(ctx context.Context) error {
	_, err := d.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = d.Predictions().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
