package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// timeLayout is RFC 3339 with the fractional seconds padded to nine digits,
// so the stored strings sort in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Timestamp is a time.Time that is persisted as an ISO-8601 string rather
// than a native BSON datetime. The string round trip keeps sub-second
// precision intact.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now().UTC()}
}

// MarshalBSONValue stores the timestamp as its ISO-8601 string form.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC().Format(timeLayout))
}

// UnmarshalBSONValue parses a stored string back into a structured time.
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(bt, data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}
