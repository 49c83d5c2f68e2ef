// Package config loads the service configuration from environment variables.
package config

import "os"

// Config holds the settings read once at process start. Later changes to
// the environment are not picked up.
type Config struct {
	// AppName is the human-readable service name.
	AppName string

	// MongoURI is the MongoDB connection string.
	MongoURI string

	// MongoDB is the database name.
	MongoDB string

	// MongoCollection is the collection that stores users.
	MongoCollection string

	// Port is the TCP port the HTTP server listens on.
	Port string
}

// Load reads the configuration from the environment, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		AppName:         getenv("APP_NAME", "User Service"),
		MongoURI:        getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGODB_DB", "users_db"),
		MongoCollection: getenv("MONGODB_COLLECTION", "users"),
		Port:            getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
