package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NotAvailable is how missing timestamps are rendered.
const NotAvailable = "Not available"

// Timestamp accepts every date shape the API emits: RFC 3339 strings, epoch
// milliseconds, and {_seconds, _nanoseconds} objects. Null or absent values
// leave Valid false.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

type secondsObject struct {
	Seconds     *int64 `json:"_seconds"`
	Nanoseconds int64  `json:"_nanoseconds"`
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = Timestamp{}

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		parsed, err := parseTimeString(s)
		if err != nil {
			return err
		}
		*t = NewTimestamp(parsed)
		return nil

	case '{':
		var obj secondsObject
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.Seconds == nil {
			return nil
		}
		*t = NewTimestamp(time.Unix(*obj.Seconds, obj.Nanoseconds).UTC())
		return nil
	}

	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("timestamp: unsupported value %s", b)
	}
	*t = NewTimestamp(time.UnixMilli(int64(ms)).UTC())
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// Display renders the date as "Jan 2, 2006".
func (t Timestamp) Display() string {
	if !t.Valid {
		return NotAvailable
	}
	return t.Time.Format("Jan 2, 2006")
}

// DisplayWithTime renders the date and the minute in local time.
func (t Timestamp) DisplayWithTime() string {
	if !t.Valid {
		return NotAvailable
	}
	return t.Time.Local().Format("Jan 2, 2006, 03:04 PM")
}

func parseTimeString(s string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, "2006-01-02T15:04:05.000", "2006-01-02 15:04:05", time.DateOnly}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp: cannot parse %q", s)
}
