package dozenal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantizeMinuteTickStaysInRange(t *testing.T) {
	for m := 0; m < 60; m++ {
		for s := 0; s < 60; s++ {
			q := QuantizeMinuteTick(m, s)
			if q < 0 || q >= SubUnits {
				t.Fatalf("QuantizeMinuteTick(%d, %d) = %d, want [0, %d)", m, s, q, SubUnits)
			}
		}
	}
}

func TestQuantizeMinuteTickValues(t *testing.T) {
	tests := []struct {
		minute, second int
		want           int
	}{
		{0, 0, 0},
		{0, 49, 0},
		{0, 50, 1},
		{5, 0, 6},
		{9, 59, 11},
		{10, 0, 0},
		{10, 50, 1},
		{59, 9, 10},
		{59, 10, 11},
		{59, 59, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuantizeMinuteTick(tt.minute, tt.second), "QuantizeMinuteTick(%d, %d)", tt.minute, tt.second)
	}
}

func TestQuantizeMinuteTickIsMonotonicWithinCycle(t *testing.T) {
	prev := 0
	for total := 0; total < 3600; total++ {
		q := QuantizeMinuteTick(total/60, total%60)
		if q != prev && q != (prev+1)%SubUnits {
			t.Fatalf("jump from %d to %d at %ds", prev, q, total)
		}
		prev = q
	}
}

func TestQuantizeHourTick(t *testing.T) {
	assert.Equal(t, 0, QuantizeHourTick(0, 0))
	assert.Equal(t, 6, QuantizeHourTick(5, 0))
	assert.Equal(t, HourTicks-1, QuantizeHourTick(59, 59))
	assert.Equal(t, HourTicks-1, QuantizeHourTick(75, 80), "out of domain input is clamped")
	assert.Equal(t, 0, QuantizeHourTick(-3, -1))
}

func TestShouldRefreshCount(t *testing.T) {
	count := 0
	for m := 0; m < 60; m++ {
		for s := 0; s < 60; s++ {
			if ShouldRefresh(m, s) {
				count++
			}
		}
	}
	assert.Equal(t, HourTicks, count)
	assert.Equal(t, 72, count)
}

func TestShouldRefreshMatchesBucketStart(t *testing.T) {
	for total := 0; total < 3600; total++ {
		m, s := total/60, total%60
		starts := total == 0 || QuantizeHourTick(m, s) != QuantizeHourTick((total-1)/60, (total-1)%60)
		assert.Equal(t, starts, ShouldRefresh(m, s), "%02d:%02d", m, s)
	}
	assert.True(t, ShouldRefresh(0, 50))
	assert.True(t, ShouldRefresh(1, 40))
	assert.False(t, ShouldRefresh(1, 0))
}
