package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dda-estates/realestate-backend/utils"
)

var (
	PropertyCollection *mongo.Collection
	ClientCollection   *mongo.Collection
)

func ConnectDB() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment")
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(20).
		SetMinPoolSize(5).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	utils.Logger.Info("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client) {
	dbName := Getenv("DB", "realestate")
	PropertyCollection = client.Database(dbName).Collection("properties")
	ClientCollection = client.Database(dbName).Collection("clients")
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		utils.Logger.Errorf("Error closing database connection: %v", err)
		return
	}
	utils.Logger.Info("MongoDB connection closed")
}
