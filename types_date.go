package bancore

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings, matching the
// layout of the durable store ("DD/MM/YYYY").
const DateFormat = "02/01/2006"

// TimestampFormat is the format used for transaction timestamps.
const TimestampFormat = "02/01/2006 15:04"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf returns the Date of a time.Time instant.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// Today returns the current date.
func Today() Date { return DateOf(time.Now()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date as DD/MM/YYYY.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// ParseDate parses a Date from a DD/MM/YYYY string.
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MarshalJSON implements json.Marshaler, encoding the date as its string form.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Timestamp is a minute-granularity instant, persisted as "DD/MM/YYYY HH:MM".
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns the Timestamp of an instant, truncated to the minute.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Minute)}
}

// Date returns the day of the timestamp.
func (s Timestamp) Date() Date { return DateOf(s.t) }

// String formats the timestamp as DD/MM/YYYY HH:MM.
func (s Timestamp) String() string { return s.t.Format(TimestampFormat) }

// IsZero returns true if the timestamp is the zero value.
func (s Timestamp) IsZero() bool { return s.t.IsZero() }

// Equal reports whether two timestamps denote the same minute.
func (s Timestamp) Equal(o Timestamp) bool { return s.t.Equal(o.t) }

// ParseTimestamp parses a Timestamp from a "DD/MM/YYYY HH:MM" string.
func ParseTimestamp(str string) (Timestamp, error) {
	t, err := time.Parse(TimestampFormat, str)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q, want format %q: %w", str, TimestampFormat, err)
	}
	return Timestamp{t: t}, nil
}

// MarshalJSON implements json.Marshaler, encoding the timestamp as its string form.
func (s Timestamp) MarshalJSON() ([]byte, error) {
	str := s.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Timestamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	ts, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*s = ts
	return nil
}

var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
