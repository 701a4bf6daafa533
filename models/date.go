package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format used by the backend for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// The backend serializes event dates as "YYYY-MM-DD" strings, which the
// standard time.Time JSON codec does not accept, so Date implements its own
// JSON marshalling.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

// String returns the date in "YYYY-MM-DD" form.
// It implements the [fmt.Stringer] interface.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON serializes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string. An empty string or
// JSON null leaves the date at its zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
