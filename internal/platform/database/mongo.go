package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo connects and pings a MongoDB deployment.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// ConnectMongoWithRetry keeps trying ConnectMongo until the deployment answers
// or the attempt budget runs out.
func ConnectMongoWithRetry(uri string, attempts int, interval time.Duration) (*mongo.Client, error) {
	var client *mongo.Client
	err := connectWithRetry("mongodb", attempts, interval, func() error {
		var connErr error
		client, connErr = ConnectMongo(uri)
		return connErr
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
