package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"remainder-service/internal/config"
)

// EnsureRemainderIndexes creates the lookup indexes the listing filters
// rely on: a compound (email, date) index and a secondary phone index.
func EnsureRemainderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log := config.Logger()
	indexes := db.Collection("remainders").Indexes()

	emailDateIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("email_1_date_1"),
	}
	phoneIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("phone_1"),
	}

	if _, err := indexes.CreateOne(ctx, emailDateIndex); err != nil {
		log.Errorln("EnsureRemainderIndexes: email_1_date_1 error:", err)
		return err
	}
	if _, err := indexes.CreateOne(ctx, phoneIndex); err != nil {
		log.Errorln("EnsureRemainderIndexes: phone_1 error:", err)
		return err
	}
	log.Infoln("EnsureRemainderIndexes: remainder indexes created")
	return nil
}
