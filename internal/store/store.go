package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"remainder-service/internal/models"
)

// ErrNotFound is returned when an id matches no record.
var ErrNotFound = errors.New("remainder not found")

// Filter is a conjunction of equality and range predicates over remainder
// records. Zero-valued fields are absent from the query.
type Filter struct {
	Email    string
	Phone    string
	DateFrom *time.Time
	DateTo   *time.Time
}

// RemainderStore is the persistence boundary. Handlers only see this
// interface, so the backend stays swappable. All listing calls return
// records ordered by (date, time) ascending; a limit of 0 means no limit.
type RemainderStore interface {
	Insert(ctx context.Context, r models.Remainder) (models.Remainder, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Remainder, error)
	Find(ctx context.Context, f Filter, skip, limit int64) ([]models.Remainder, error)
	Count(ctx context.Context, f Filter) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields models.Remainder) (models.Remainder, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (models.Remainder, error)
}
