package bancore

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2026, 8, 31)
	d2 := NewDate(2026, 8, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"31/08/2026", NewDate(2026, time.August, 31), false},
		{"01/01/2000", NewDate(2000, time.January, 1), false},
		{"2026-08-31", Date{}, true}, // ISO is not the store layout
		{"31/13/2026", Date{}, true},
		{"invalid", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_Add(t *testing.T) {
	tests := []struct {
		from     Date
		days     int
		expected Date
	}{
		{NewDate(2026, 8, 31), 0, NewDate(2026, 8, 31)},
		{NewDate(2026, 8, 31), 5, NewDate(2026, 9, 5)},   // rolls over the month
		{NewDate(2026, 12, 31), 1, NewDate(2027, 1, 1)},  // rolls over the year
		{NewDate(2026, 8, 31), 30, NewDate(2026, 9, 30)},
		{NewDate(2026, 3, 1), -1, NewDate(2026, 2, 28)},
	}
	for _, tt := range tests {
		if got := tt.from.Add(tt.days); got != tt.expected {
			t.Errorf("%v.Add(%d) = %v, want %v", tt.from, tt.days, got, tt.expected)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, 8, 31)
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"31/08/2026"`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var back Date
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Errorf("expected an error decoding an invalid date")
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 45, 123, time.UTC)
	ts := NewTimestamp(at)

	if got, want := ts.String(), "31/08/2026 10:30"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := ts.Date(), NewDate(2026, 8, 31); got != want {
		t.Errorf("Date() = %v, want %v", got, want)
	}

	// seconds are truncated, two instants in the same minute are equal.
	other := NewTimestamp(time.Date(2026, 8, 31, 10, 30, 2, 0, time.UTC))
	if !ts.Equal(other) {
		t.Errorf("timestamps in the same minute should be equal")
	}

	parsed, err := ParseTimestamp("31/08/2026 10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.String() != ts.String() {
		t.Errorf("ParseTimestamp round trip = %q, want %q", parsed.String(), ts.String())
	}

	if _, err := ParseTimestamp("2026-08-31T10:30:00Z"); err == nil {
		t.Errorf("expected an error parsing an ISO timestamp")
	}
}
