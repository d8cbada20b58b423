package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
)

var (
	ErrInvalidTimestamp = apperrors.InvalidArgument("invalid_timestamp", "Date must be a valid timestamp")

	errNotDuration = errors.New("duration must be in format HH:MM:SS")
	errNotClock    = errors.New("time must be in format HH:MM")

	durationPattern = regexp.MustCompile(`^(\d{1,3}):([0-5]\d):([0-5]\d)$`)
	clockPattern    = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
	// quoted epoch milliseconds need at least 10 digits, so "2021" is not a date
	millisPattern = regexp.MustCompile(`^\d{10,}$`)

	minTimestamp = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTimestamp = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

	timestampLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// Present reports whether a raw JSON field was sent with a non-null value.
func Present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ParseDuration reads an "HH:MM:SS" JSON string. Numbers and other JSON
// types are rejected.
func ParseDuration(raw json.RawMessage) (time.Duration, string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, "", errNotDuration
	}
	d, err := ParseClockDuration(s)
	if err != nil {
		return 0, "", err
	}
	return d, strings.TrimSpace(s), nil
}

// ParseClockDuration parses "HH:MM:SS".
func ParseClockDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, errNotDuration
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute + time.Duration(sec)*time.Second, nil
}

// ParseClock validates a time of day and returns it zero padded as "HH:MM".
func ParseClock(s string) (string, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", errNotClock
	}
	h, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s", h, m[2]), nil
}

// ParseTimestamp reads a JSON timestamp sent either as a string or as epoch
// milliseconds.
func ParseTimestamp(raw json.RawMessage) (time.Time, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return time.Time{}, ErrInvalidTimestamp
		}
		return ParseTimeString(s)
	}

	var ms json.Number
	if err := json.Unmarshal(trimmed, &ms); err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return fromMillis(ms.String())
}

// ParseTimeString parses a textual timestamp; a string of ten or more digits
// is taken as epoch milliseconds.
func ParseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if millisPattern.MatchString(s) {
		return fromMillis(s)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return inRange(t.UTC())
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// fromMillis converts epoch milliseconds, rejecting values outside years 1 to 9999.
func fromMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, ErrInvalidTimestamp
	}
	if ms < float64(minTimestamp.UnixMilli()) || ms > float64(maxTimestamp.UnixMilli()) {
		return time.Time{}, ErrInvalidTimestamp
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func inRange(t time.Time) (time.Time, error) {
	if t.Before(minTimestamp) || t.After(maxTimestamp) {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}
