package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Remainder is a stored reminder record. Dates are kept at midnight UTC so
// equality and range filters work on calendar days.
type Remainder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required,max=100"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Phone        string             `bson:"phone" json:"phone" validate:"required,phone"`
	Occasion     string             `bson:"occasion" json:"occasion" validate:"required,oneof=birthday anniversary meeting appointment other"`
	Date         time.Time          `bson:"date" json:"date" validate:"required,notpast"`
	Time         string             `bson:"time" json:"time" validate:"required,hhmm"`
	Relationship string             `bson:"relationship" json:"relationship" validate:"required,oneof=father mother brother sister friend colleague spouse child other"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RemainderInput is the write payload for create and update. Both operations
// take the full field set; there is no partial patch.
type RemainderInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phone"`
	Occasion     string `json:"occasion" validate:"required,oneof=birthday anniversary meeting appointment other"`
	Date         string `json:"date" validate:"required,calendardate,notpast"`
	Time         string `json:"time" validate:"required,hhmm"`
	Relationship string `json:"relationship" validate:"required,oneof=father mother brother sister friend colleague spouse child other"`
}

// Normalize trims every field and lower-cases the email. Runs before
// validation so the stored record matches what was validated.
func (in *RemainderInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Occasion = strings.TrimSpace(in.Occasion)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Relationship = strings.TrimSpace(in.Relationship)
}

// Record converts the payload into a storable document. The store assigns
// id and timestamps on insert.
func (in RemainderInput) Record() (Remainder, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return Remainder{}, err
	}
	return Remainder{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Occasion:     in.Occasion,
		Date:         date,
		Time:         in.Time,
		Relationship: in.Relationship,
	}, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a plain calendar date or a full RFC3339 timestamp and
// truncates either to midnight UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
