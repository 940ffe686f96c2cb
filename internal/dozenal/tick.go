package dozenal

const (
	// TickSeconds is the width of one dozenal sub-unit bucket.
	TickSeconds = 50
	// SubUnits is the number of sub-units shown in the minute field.
	SubUnits = 12
	// HourTicks is the number of buckets in one decimal hour.
	HourTicks = 3600 / TickSeconds
)

// QuantizeHourTick returns the 50-second bucket of the hour, in [0, HourTicks).
// Minute and second are clamped to [0, 59].
func QuantizeHourTick(minute, second int) int {
	return (clamp(minute, 0, 59)*60 + clamp(second, 0, 59)) / TickSeconds
}

// QuantizeMinuteTick maps the hour's 72 buckets cyclically onto the 12
// dozenal sub-units. The result is always in [0, 11].
func QuantizeMinuteTick(minute, second int) int {
	return QuantizeHourTick(minute, second) % SubUnits
}

// ShouldRefresh reports whether a new bucket starts at minute:second.
func ShouldRefresh(minute, second int) bool {
	return (minute*60+second)%TickSeconds == 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
