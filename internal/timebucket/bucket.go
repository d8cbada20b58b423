// Package timebucket partitions timestamped samples into day, week, month or
// year buckets and sums their metrics.
package timebucket

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Unit is the width of a bucket.
type Unit string

const (
	Day   Unit = "day"
	Week  Unit = "week"
	Month Unit = "month"
	Year  Unit = "year"
)

// ErrInvalidUnit is returned for any unit other than day, week, month or year.
var ErrInvalidUnit = errors.New("invalid group by value")

// ParseUnit accepts a unit name case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case Day, Week, Month, Year:
		return u, nil
	default:
		return "", ErrInvalidUnit
	}
}

// Label returns the display key of the bucket containing t. Labels are
// computed in UTC and never zero-padded. Week labels pair the ISO-8601 week
// with its ISO week-numbering year, which differs from the calendar year in
// the first and last days of some years: 2021-01-03 is "53-2020" and
// 2024-12-30 is "1-2025".
func Label(t time.Time, u Unit) string {
	t = t.UTC()
	switch u {
	case Day:
		return strconv.Itoa(t.Day()) + "-" + strconv.Itoa(int(t.Month())) + "-" + strconv.Itoa(t.Year())
	case Week:
		year, week := t.ISOWeek()
		return strconv.Itoa(week) + "-" + strconv.Itoa(year)
	case Month:
		return strconv.Itoa(int(t.Month())) + "-" + strconv.Itoa(t.Year())
	default:
		return strconv.Itoa(t.Year())
	}
}

// Sample is one measurement to aggregate.
type Sample struct {
	Date     time.Time
	Distance float64
	Steps    int64
	Calories float64
}

// Bucket holds the sums of every sample sharing a label.
type Bucket struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
	Steps    int64   `json:"steps"`
	Calories float64 `json:"calories"`
}

// Series is the column-oriented form of a bucket list.
type Series struct {
	Label    []string  `json:"label"`
	Distance []float64 `json:"distance"`
	Steps    []int64   `json:"steps"`
	Calories []float64 `json:"calories"`
}

// Aggregate groups samples by unit. Buckets appear in the order their first
// sample appears in samples, so callers pass samples in creation order.
func Aggregate(samples []Sample, u Unit) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)

	for _, s := range samples {
		label := Label(s.Date, u)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, Bucket{Label: label})
		}
		buckets[i].Distance += s.Distance
		buckets[i].Steps += s.Steps
		buckets[i].Calories += s.Calories
	}

	return buckets
}

// Columns converts buckets into parallel arrays.
func Columns(buckets []Bucket) Series {
	s := Series{
		Label:    make([]string, 0, len(buckets)),
		Distance: make([]float64, 0, len(buckets)),
		Steps:    make([]int64, 0, len(buckets)),
		Calories: make([]float64, 0, len(buckets)),
	}
	for _, b := range buckets {
		s.Label = append(s.Label, b.Label)
		s.Distance = append(s.Distance, b.Distance)
		s.Steps = append(s.Steps, b.Steps)
		s.Calories = append(s.Calories, b.Calories)
	}
	return s
}
