// File: /models/types.go
package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// dateInputLayouts are the formats accepted when parsing calendar dates from
// query parameters and spreadsheet cells.
var dateInputLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01-02-06", // Excel's default short date display
}

// timeInputLayouts are the formats accepted when parsing times of day.
var timeInputLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04:05 PM",
}

// DateOnly is a calendar date without a time component. It is stored as
// YYYY-MM-DD so that SQL ordering and range comparisons are chronological.
type DateOnly struct {
	time.Time
}

// ParseDateOnly parses a date literal in any of the accepted layouts.
func ParseDateOnly(value string) (DateOnly, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOnly{t}, nil
		}
	}
	return DateOnly{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// Today returns the current calendar date.
func Today() DateOnly {
	now := time.Now()
	return DateOnly{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

// Value implements driver.Valuer interface for database storage
func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Scan implements sql.Scanner interface for database retrieval
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOnly{time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d *DateOnly) scanString(value string) error {
	// MySQL DATETIME columns may carry a time part, keep the date only
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	*d = DateOnly{t}
	return nil
}

// GormDataType returns the data type for GORM
func (DateOnly) GormDataType() string {
	return "date"
}

// MarshalJSON implements json.Marshaler interface
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	parsed, err := ParseDateOnly(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOnly is a time of day without a date component, stored as HH:MM:SS.
type TimeOnly struct {
	time.Time
}

// ParseTimeOnly parses a time-of-day literal in any of the accepted layouts.
func ParseTimeOnly(value string) (TimeOnly, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TimeOnly{t}, nil
		}
	}
	return TimeOnly{}, fmt.Errorf("invalid time %q, expected HH:MM", value)
}

func (t TimeOnly) String() string {
	return t.Format(timeLayout)
}

// Value implements driver.Valuer interface for database storage
func (t TimeOnly) Value() (driver.Value, error) {
	return t.Format(timeLayout), nil
}

// Scan implements sql.Scanner interface for database retrieval
func (t *TimeOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOnly{}
		return nil
	case time.Time:
		*t = TimeOnly{v}
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOnly", value)
	}
}

func (t *TimeOnly) scanString(value string) error {
	parsed, err := ParseTimeOnly(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GormDataType returns the data type for GORM
func (TimeOnly) GormDataType() string {
	return "time"
}

// MarshalJSON implements json.Marshaler interface
func (t TimeOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (t *TimeOnly) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOnly(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
