package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realtyshopee/internal/config"
)

// Collection names used by the application.
const (
	UsersCollection      = "users"
	PropertiesCollection = "properties"
	BlogsCollection      = "blogs"
	QueryFormsCollection = "queryforms"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	db := &DB{
		Client:   client,
		Database: client.Database(cfg.DBName),
	}

	// Collections are created idempotently; already-exists is the expected
	// case and is not treated as an error.
	for _, name := range []string{UsersCollection, PropertiesCollection, BlogsCollection, QueryFormsCollection} {
		if err := db.Database.CreateCollection(ctx, name); err != nil {
			log.Printf("create collection %s: %v", name, err)
		}
	}

	log.Println("Connected to Database")
	return db, nil
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

func (db *DB) CloseDB(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return db.Client.Ping(ctx, nil)
}
