package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Weekdays is the set of days a plan runs on. It is stored as a
// comma-separated column and rendered as "monday, tuesday" on the wire.
type Weekdays []string

// ParseWeekdays splits a comma separated list, normalizing case and spacing.
func ParseWeekdays(s string) Weekdays {
	var days Weekdays
	for _, part := range strings.Split(s, ",") {
		if d := strings.ToLower(strings.TrimSpace(part)); d != "" {
			days = append(days, d)
		}
	}
	return days.dedupe()
}

func (w Weekdays) dedupe() Weekdays {
	seen := make(map[string]bool, len(w))
	out := make(Weekdays, 0, len(w))
	for _, d := range w {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// Valid reports whether every entry is a weekday name.
func (w Weekdays) Valid() bool {
	if len(w) == 0 {
		return false
	}
	for _, d := range w {
		if !weekdayNames[d] {
			return false
		}
	}
	return true
}

func (w Weekdays) Contains(day string) bool {
	day = strings.ToLower(strings.TrimSpace(day))
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

func (w Weekdays) String() string {
	return strings.Join(w, ", ")
}

// Value implements driver.Valuer
func (w Weekdays) Value() (driver.Value, error) {
	return strings.Join(w, ","), nil
}

// Scan implements sql.Scanner
func (w *Weekdays) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*w = nil
	case string:
		*w = ParseWeekdays(v)
	case []byte:
		*w = ParseWeekdays(string(v))
	default:
		return fmt.Errorf("failed to scan weekdays from %T", value)
	}
	return nil
}

func (Weekdays) GormDataType() string {
	return "text"
}

func (w Weekdays) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts "monday, tuesday" or ["monday", "tuesday"].
func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = ParseWeekdays(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("days must be a string or a list of strings")
	}
	*w = ParseWeekdays(strings.Join(list, ","))
	return nil
}
