// Package mongodb manages the process-wide MongoDB client.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// connectTimeout bounds the startup connection check.
const connectTimeout = 10 * time.Second

// Connect opens a client for the given URI and verifies the connection
// with a ping. The returned client is safe for concurrent use and is
// shared by all requests for the process lifetime; the caller owns it and
// must call Disconnect at shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("MongoDB client setup failed", "error", err)
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		slog.Error("MongoDB connection failed", "error", err)
		if derr := client.Disconnect(ctx); derr != nil {
			slog.Error("failed to close MongoDB client", "error", derr)
		}
		return nil, err
	}

	slog.Info("MongoDB connection successful")
	return client, nil
}
