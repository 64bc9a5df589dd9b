// Package clock provides the injected time source for the protocol core.
//
// No component reads wall-clock time directly: every timeout and interval is
// derived from a Clock handed in at construction, so state machines can be
// driven deterministically in tests.
package clock

import (
	"fmt"
	"time"

	bclock "github.com/benbjohnson/clock"
)

// LocalTime is the node's local time, in milliseconds since the Unix epoch.
// It is a plain scalar so that comparisons and arithmetic are deterministic.
type LocalTime int64

// FromTime converts a time.Time to a LocalTime.
func FromTime(t time.Time) LocalTime {
	return LocalTime(t.UnixMilli())
}

// Time converts the LocalTime back to a time.Time in UTC.
func (t LocalTime) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// Sub returns the duration t - u.
func (t LocalTime) Sub(u LocalTime) time.Duration {
	return time.Duration(t-u) * time.Millisecond
}

// Add returns the local time d after t. Sub-millisecond components are
// truncated.
func (t LocalTime) Add(d time.Duration) LocalTime {
	return t + LocalTime(d.Milliseconds())
}

// Before reports whether t is earlier than u.
func (t LocalTime) Before(u LocalTime) bool {
	return t < u
}

// After reports whether t is later than u.
func (t LocalTime) After(u LocalTime) bool {
	return t > u
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%dms", int64(t))
}

// Clock is the time source shared by the protocol state machines.
type Clock interface {
	// LocalTime returns the current local time.
	LocalTime() LocalTime
}

// System is a Clock backed by an underlying time source.
type System struct {
	inner bclock.Clock
}

// NewSystem creates a Clock reading the system time.
func NewSystem() *System {
	return &System{inner: bclock.New()}
}

// NewWithSource creates a Clock reading from the given source. Tests pass a
// *clock.Mock to control time explicitly.
func NewWithSource(src bclock.Clock) *System {
	return &System{inner: src}
}

// LocalTime returns the current reading of the underlying source.
func (s *System) LocalTime() LocalTime {
	return FromTime(s.inner.Now())
}
