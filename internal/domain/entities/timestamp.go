package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTime accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date (midnight
// UTC) and returns the instant in UTC. Every transport parses times through it.
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 timestamp or YYYY-MM-DD date", ErrInvalidInput, value)
	}
	return t, nil
}

// Timestamp is a time carried in a request body. It decodes from the formats
// ParseTime accepts and encodes like time.Time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, converted to UTC
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: time must be a string", ErrInvalidInput)
	}

	parsed, err := ParseTime(value)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
