package clock

import (
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
)

func TestLocalTime_Arithmetic(t *testing.T) {
	base := LocalTime(1_000)

	if got := base.Add(2 * time.Second); got != LocalTime(3_000) {
		t.Errorf("Add(2s) = %v, want 3000ms", got)
	}
	if got := base.Add(2 * time.Second).Sub(base); got != 2*time.Second {
		t.Errorf("Sub = %v, want 2s", got)
	}
	if !base.Before(base.Add(time.Millisecond)) {
		t.Error("expected base to be before base+1ms")
	}
	if !base.Add(time.Millisecond).After(base) {
		t.Error("expected base+1ms to be after base")
	}
}

func TestLocalTime_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
	}{
		{"epoch", time.Unix(0, 0)},
		{"recent", time.Unix(1_700_000_000, 500_000_000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := FromTime(tt.when)
			if got := lt.Time(); !got.Equal(tt.when.Truncate(time.Millisecond)) {
				t.Errorf("Time() = %v, want %v", got, tt.when.Truncate(time.Millisecond))
			}
		})
	}
}

func TestSystem_MockSource(t *testing.T) {
	mock := bclock.NewMock()
	clk := NewWithSource(mock)

	start := clk.LocalTime()
	mock.Add(90 * time.Second)

	if got := clk.LocalTime().Sub(start); got != 90*time.Second {
		t.Errorf("elapsed = %v, want 90s", got)
	}
}
