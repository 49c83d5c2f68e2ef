package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "MONGODB_URI", "MONGODB_DB", "MONGODB_COLLECTION", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AppName != "User Service" {
		t.Errorf("expected default app name, got %q", cfg.AppName)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("expected default Mongo URI, got %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "users_db" {
		t.Errorf("expected default database name, got %q", cfg.MongoDB)
	}
	if cfg.MongoCollection != "users" {
		t.Errorf("expected default collection name, got %q", cfg.MongoCollection)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port, got %q", cfg.Port)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DB", "prod_users")
	t.Setenv("PORT", "9090")

	cfg := Load()

	if cfg.MongoURI != "mongodb://db.internal:27017" {
		t.Errorf("expected URI from environment, got %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "prod_users" {
		t.Errorf("expected database name from environment, got %q", cfg.MongoDB)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port from environment, got %q", cfg.Port)
	}
}
