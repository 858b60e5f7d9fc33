package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"remainder-service/internal/models"
	"remainder-service/internal/validation"
)

const collectionName = "remainders"

// Listing order for every find: soonest date first, then time of day.
var listOrder = bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}

// MongoStore implements RemainderStore on a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName)}
}

func (f Filter) query() bson.M {
	query := bson.M{}
	if f.Email != "" {
		query["email"] = f.Email
	}
	if f.Phone != "" {
		query["phone"] = f.Phone
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		query["date"] = dateRange
	}
	return query
}

// guard re-runs the write-field rules so a record that slipped past the
// handler still cannot reach the collection.
func guard(r *models.Remainder) error {
	if errs := validation.ValidateRecord(r); len(errs) > 0 {
		return &validation.Error{Fields: errs}
	}
	return nil
}

func (s *MongoStore) Insert(ctx context.Context, r models.Remainder) (models.Remainder, error) {
	if err := guard(&r); err != nil {
		return models.Remainder{}, err
	}

	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.IsActive = true
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return models.Remainder{}, err
	}
	return r, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Remainder, error) {
	var r models.Remainder
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return models.Remainder{}, ErrNotFound
	}
	if err != nil {
		return models.Remainder{}, err
	}
	return r, nil
}

func (s *MongoStore) Find(ctx context.Context, f Filter, skip, limit int64) ([]models.Remainder, error) {
	opts := options.Find().SetSort(listOrder)
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.col.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.Remainder, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MongoStore) Count(ctx context.Context, f Filter) (int64, error) {
	return s.col.CountDocuments(ctx, f.query())
}

func (s *MongoStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields models.Remainder) (models.Remainder, error) {
	if err := guard(&fields); err != nil {
		return models.Remainder{}, err
	}

	update := bson.M{"$set": bson.M{
		"name":         fields.Name,
		"email":        fields.Email,
		"phone":        fields.Phone,
		"occasion":     fields.Occasion,
		"date":         fields.Date,
		"time":         fields.Time,
		"relationship": fields.Relationship,
		"updatedAt":    time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Remainder
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Remainder{}, ErrNotFound
	}
	if err != nil {
		return models.Remainder{}, err
	}
	return updated, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.Remainder, error) {
	var deleted models.Remainder
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return models.Remainder{}, ErrNotFound
	}
	if err != nil {
		return models.Remainder{}, err
	}
	return deleted, nil
}
