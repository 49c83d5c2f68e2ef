package main

import (
	"context"
	"log"

	"user_service/internal/app/router"
	"user_service/internal/feature/users/adapters"
	userhandler "user_service/internal/feature/users/transport/handler"
	"user_service/internal/feature/users/usecase"
	"user_service/internal/platform/config"
	"user_service/internal/platform/mongodb"
)

func main() {
	cfg := config.Load()

	// Store connection, held for the process lifetime
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connect failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to close MongoDB client:", err)
		}
	}()

	coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)

	// Repository
	userRepo := adapters.NewUserMongo(coll)

	// Usecase
	userUC := usecase.NewUserUsecase(userRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	router := router.NewRouter(userH)

	log.Printf("%s listening on :%s", cfg.AppName, cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
