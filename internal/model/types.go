// Package model defines shared data structures.
package model

import "time"

// CivilTime is a snapshot of decimal clock and calendar fields.
type CivilTime struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int
}

// CivilTimeFrom captures the civil fields of t in its own location.
func CivilTimeFrom(t time.Time) CivilTime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return CivilTime{
		Hour:   hour,
		Minute: minute,
		Second: second,
		Day:    day,
		Month:  int(month),
		Year:   year,
	}
}

// Output holds the dozenal strings shown on the watch face.
type Output struct {
	Time string
	Date string
	Year string
	Info string
}

// WatchConfig defines watch face settings.
type WatchConfig struct {
	Location   *time.Location
	Info       string
	MinuteMode string
	Seconds    bool
	Big        bool
	Accent     string
}
