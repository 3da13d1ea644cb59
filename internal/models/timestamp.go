package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the canonical wire and storage format for all record
// timestamps: fixed-width RFC3339 UTC with milliseconds. Because it is
// fixed-width and zero-padded, lexical order of stored strings equals
// chronological order, which the sync queries rely on.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a point in time that only ever round-trips through the
// canonical layout. Input that is not canonical is rejected at the boundary;
// comparisons happen on the numeric instant, not on strings.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// TimestampNow returns the current instant as a Timestamp.
func TimestampNow() Timestamp {
	return NewTimestamp(time.Now())
}

// ParseTimestamp parses s strictly against the canonical layout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t.UTC()}, nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// After reports whether t is strictly later than other, comparing instants.
func (t Timestamp) After(other Timestamp) bool {
	return t.Time.After(other.Time)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid timestamp: %s", b)
	}
	parsed, err := ParseTimestamp(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the canonical string so both SQL dialects compare correctly.
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}
