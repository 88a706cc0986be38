package database

import (
	"context"
	"time"

	"MediMaga/utils"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AppointmentsCollection = "appointments"
	ContactsCollection     = "contacts"
)

// InitMongo connects to MongoDB, pings it and ensures the collection indexes.
func InitMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Connected to MongoDB successfully")
	return db, nil
}

// ensureIndexes creates indexes for fields frequently used in queries.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	appointmentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientEmail", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(AppointmentsCollection).Indexes().CreateMany(ctx, appointmentIndexes); err != nil {
		return errors.Wrap(err, "failed to create appointment indexes")
	}

	contactIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(ContactsCollection).Indexes().CreateMany(ctx, contactIndexes); err != nil {
		return errors.Wrap(err, "failed to create contact indexes")
	}
	return nil
}

// PingMongo is used by the health check.
func PingMongo(ctx context.Context, db *mongo.Database) error {
	if err := db.Client().Ping(ctx, nil); err != nil {
		return errors.Wrap(err, "failed to ping MongoDB")
	}
	return nil
}
