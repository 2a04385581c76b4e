// Package types implements special types for the expense tracker.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period is the recurring window over which a budget limit applies.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var ErrInvalidPeriod = errors.New("period must be one of daily, weekly, monthly, yearly")

// ParsePeriod parses a period string.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidPeriod, s)
	}

	return p, nil
}

// Valid reports whether the period is one of the known period kinds.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}

	return false
}

func (p Period) String() string {
	return string(p)
}

// Start returns the inclusive lower bound of the period window containing
// reference, truncated to midnight in the reference's location.
//
// For weekly periods the window begins on weekStart. The subtraction is
// performed on the already-truncated day so that the boundary is always a
// midnight instant.
func (p Period) Start(reference time.Time, weekStart time.Weekday) (time.Time, error) {
	year, month, day := reference.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, reference.Location())

	switch p {
	case PeriodDaily:
		return midnight, nil
	case PeriodWeekly:
		days := int(midnight.Weekday()) - int(weekStart)
		if days < 0 {
			days += 7
		}
		return midnight.AddDate(0, 0, -days), nil
	case PeriodMonthly:
		return time.Date(year, month, 1, 0, 0, 0, 0, reference.Location()), nil
	case PeriodYearly:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, reference.Location()), nil
	}

	return time.Time{}, fmt.Errorf("%w, got %q", ErrInvalidPeriod, string(p))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Period) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParsePeriod(value)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Scan reads the value from the database.
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Period(v)
	case []byte:
		*p = Period(v)
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Period) GormDataType() string {
	return "text"
}
