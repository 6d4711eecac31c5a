package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form dates are stored in.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. Streak and
// activity rows compare whole days, so time and zone are stripped on
// construction.
type Date struct {
	t time.Time
}

// Today returns the current date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf returns the calendar date of the given moment.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %v", s, err)
	}
	return DateOf(t), nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON renders the date in its YYYY-MM-DD form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so dates can be bound as query parameters.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. SQLite returns DATE columns as time.Time or
// text depending on how the value was written, so both are accepted.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
