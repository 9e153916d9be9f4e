package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client             *mongo.Client
	UserCollection     *mongo.Collection
	CustomerCollection *mongo.Collection
	SupplierCollection *mongo.Collection
	ExpenseCollection  *mongo.Collection
	OrderCollection    *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	UserCollection = Client.Database("satracker").Collection("users")
	CustomerCollection = Client.Database("satracker").Collection("customers")
	SupplierCollection = Client.Database("satracker").Collection("suppliers")
	ExpenseCollection = Client.Database("satracker").Collection("expenses")
	OrderCollection = Client.Database("satracker").Collection("orders")

	log.Println("Connected to MongoDB")
}
