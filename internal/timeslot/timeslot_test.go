package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkInterval(start string, hours float64) Interval {
	iv, err := NewInterval(start, hours)
	if err != nil {
		panic(err)
	}
	return iv
}

func TestNewInterval(t *testing.T) {
	iv := mkInterval("09:00", 2)
	assert.Equal(t, 9*60, iv.StartMinutes)
	assert.Equal(t, 11*60, iv.EndMinutes)

	// Postgres time columns come back with seconds.
	iv = mkInterval("14:30:00", 1.5)
	assert.Equal(t, 14*60+30, iv.StartMinutes)
	assert.Equal(t, 16*60, iv.EndMinutes)
}

func TestNewIntervalRejectsBadClock(t *testing.T) {
	for _, clock := range []string{"", "9", "25:00", "09:61", "nine am"} {
		_, err := NewInterval(clock, 1)
		assert.Errorf(t, err, "clock=%q", clock)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "back to back slots do not conflict",
			a:    mkInterval("09:00", 1),
			b:    mkInterval("10:00", 1),
			want: false,
		},
		{
			name: "partial overlap conflicts",
			a:    mkInterval("09:00", 1.5),
			b:    mkInterval("10:00", 1),
			want: true,
		},
		{
			name: "containment conflicts",
			a:    mkInterval("09:00", 4),
			b:    mkInterval("10:00", 1),
			want: true,
		},
		{
			name: "identical slots conflict",
			a:    mkInterval("09:00", 1),
			b:    mkInterval("09:00", 1),
			want: true,
		},
		{
			name: "disjoint slots do not conflict",
			a:    mkInterval("09:00", 1),
			b:    mkInterval("13:00", 2),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []Interval{
		mkInterval("09:00", 1),
		mkInterval("13:00", 2),
	}

	assert.False(t, HasConflict(mkInterval("10:00", 2), existing))
	assert.True(t, HasConflict(mkInterval("14:00", 3), existing))
	assert.False(t, HasConflict(mkInterval("10:00", 2), nil))
}
