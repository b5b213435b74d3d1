package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect opens the Mongo client, verifies the connection and ensures the
// indexes the query paths rely on. The client is opened once at process
// start and lives until Disconnect.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, nil, err
	}
	return client, db, nil
}

// ensureIndexes backs the id lookups and the newest-first listings.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{"vehicles", bson.D{{Key: "id", Value: 1}}},
		{"vehicles", bson.D{{Key: "created_at", Value: -1}}},
		{"contact_messages", bson.D{{Key: "created_at", Value: -1}}},
		{"status_checks", bson.D{{Key: "timestamp", Value: -1}}},
	}
	for _, idx := range indexes {
		_, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys})
		if err != nil {
			return err
		}
	}
	return nil
}

// Disconnect closes the client, waiting at most the given timeout.
func Disconnect(client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}
