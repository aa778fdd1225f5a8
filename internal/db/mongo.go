package db

import (
	"context"
	"log"
	"time"

	"leadtrack-backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match the layout the Mongoose deployment left behind, so
// the rewrite runs against existing data.
const (
	LeadsCollection           = "formdatas"
	SuggestionFormsCollection = "SuggestionForms"
	ExpensesCollection        = "expenses"
)

// Connect establishes the MongoDB client and verifies it with a ping.
func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	log.Printf("[Mongo] Connected to %s (database: %s)", cfg.Mongo.URI, cfg.Mongo.Database)
	return client, nil
}

// Disconnect closes the client, logging instead of propagating the error
// since it only runs on shutdown.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("[Mongo] Disconnect error: %v", err)
	}
}
