package dozenal

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/dozwatch/internal/model"
)

// DefaultInfo is the static line printed under the year.
const DefaultInfo = "www.dozenal.org"

// Mode selects how the minute field of the time string is computed.
type Mode int

const (
	// ModeCyclic shows QuantizeMinuteTick, a single sub-unit in 00..0E.
	ModeCyclic Mode = iota
	// ModeHour shows QuantizeHourTick, the bucket of the hour in 00..5E.
	ModeHour
)

// ParseMode parses a mode name as used in config files and flags.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cyclic":
		return ModeCyclic, nil
	case "hour":
		return ModeHour, nil
	default:
		return ModeCyclic, fmt.Errorf("unknown minute mode %q (want cyclic or hour)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeHour:
		return "hour"
	default:
		return "cyclic"
	}
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == ModeHour {
		return ModeCyclic
	}
	return ModeHour
}

// Options configures a Formatter. The zero value matches FormatOutput.
type Options struct {
	Mode Mode
	Info string
}

// Formatter composes the watch face strings from a civil time sample.
type Formatter struct {
	opts Options
}

// NewFormatter returns a Formatter for opts.
func NewFormatter(opts Options) Formatter {
	return Formatter{opts: opts}
}

// Options returns the formatter settings.
func (f Formatter) Options() Options {
	return f.opts
}

// Format converts every field of sample. Nothing is returned on error.
func (f Formatter) Format(sample model.CivilTime) (model.Output, error) {
	if err := Validate(sample); err != nil {
		return model.Output{}, err
	}
	minute := QuantizeMinuteTick(sample.Minute, sample.Second)
	if f.opts.Mode == ModeHour {
		minute = QuantizeHourTick(sample.Minute, sample.Second)
	}
	year, err := ConvertYear(sample.Year)
	if err != nil {
		return model.Output{}, err
	}
	info := f.opts.Info
	if info == "" {
		info = DefaultInfo
	}
	return model.Output{
		Time: pairs[sample.Hour] + ":" + pairs[minute],
		Date: pairs[sample.Day] + "/" + pairs[sample.Month],
		Year: year,
		Info: info,
	}, nil
}

// FormatOutput converts sample with the default cyclic minute mode.
func FormatOutput(sample model.CivilTime) (model.Output, error) {
	return Formatter{}.Format(sample)
}

// Validate checks every field of sample against its civil range.
func Validate(sample model.CivilTime) error {
	checks := []struct {
		field    string
		value    int
		min, max int
	}{
		{"hour", sample.Hour, 0, 23},
		{"minute", sample.Minute, 0, 59},
		{"second", sample.Second, 0, 59},
		{"day", sample.Day, 1, 31},
		{"month", sample.Month, 1, 12},
		{"year", sample.Year, 0, math.MaxInt},
	}
	for _, c := range checks {
		if err := checkRange(c.field, c.value, c.min, c.max); err != nil {
			return err
		}
	}
	return nil
}
