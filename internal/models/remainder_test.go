package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatePlainCalendarDate(t *testing.T) {
	date, err := ParseDate("2030-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateRFC3339TruncatesToMidnight(t *testing.T) {
	date, err := ParseDate("2030-06-15T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("15/06/2030")
	assert.Error(t, err)
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	in := RemainderInput{
		Name:         "  Alice  ",
		Email:        " Alice@Example.COM ",
		Phone:        " +15551234567 ",
		Occasion:     " birthday ",
		Date:         " 2030-06-15 ",
		Time:         " 09:30 ",
		Relationship: " friend ",
	}
	in.Normalize()

	assert.Equal(t, "Alice", in.Name)
	assert.Equal(t, "alice@example.com", in.Email)
	assert.Equal(t, "+15551234567", in.Phone)
	assert.Equal(t, "birthday", in.Occasion)
	assert.Equal(t, "2030-06-15", in.Date)
	assert.Equal(t, "09:30", in.Time)
	assert.Equal(t, "friend", in.Relationship)
}

func TestRecordCarriesEveryWriteField(t *testing.T) {
	in := RemainderInput{
		Name:         "Alice",
		Email:        "alice@example.com",
		Phone:        "+15551234567",
		Occasion:     "birthday",
		Date:         "2030-06-15",
		Time:         "09:30",
		Relationship: "friend",
	}

	record, err := in.Record()
	require.NoError(t, err)

	assert.Equal(t, "Alice", record.Name)
	assert.Equal(t, "alice@example.com", record.Email)
	assert.Equal(t, "+15551234567", record.Phone)
	assert.Equal(t, "birthday", record.Occasion)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "09:30", record.Time)
	assert.Equal(t, "friend", record.Relationship)
	assert.True(t, record.ID.IsZero())
	assert.True(t, record.CreatedAt.IsZero())
}

func TestRecordPropagatesDateError(t *testing.T) {
	in := RemainderInput{Date: "not a date"}
	_, err := in.Record()
	assert.Error(t, err)
}
