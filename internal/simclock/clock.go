// Package simclock provides the accelerated clock the reminder runs on.
// Simulated time is a wall-clock base captured at startup plus
// speed-factor-scaled real time credited by a background accelerator.
package simclock

import (
	"fmt"
	"sync/atomic"
	"time"
)

const (
	// MinSpeedFactor and MaxSpeedFactor bound the accepted acceleration.
	MinSpeedFactor = 1
	MaxSpeedFactor = 30

	// DefaultTickInterval is the real-time cadence of the accelerator.
	DefaultTickInterval = 100 * time.Millisecond

	microsPerSecond = int64(time.Second / time.Microsecond)
)

// Clock maps accelerated simulated time onto a fixed base. The accelerator
// goroutine adds to the pending accumulator; Sample folds the pending amount
// into the applied total once at least one whole simulated second has built
// up. Pending is a single atomic cell consumed with a swap, so no credited
// time is ever lost or double counted, and the accelerator never blocks on
// the poll loop; simulated time keeps accruing while the loop sits in a
// prompt.
//
// Sample must only be called from the poll loop goroutine; the applied total
// is not synchronized.
type Clock struct {
	base    time.Time
	speed   int
	pending atomic.Int64 // simulated microseconds not yet applied
	applied time.Duration
}

// New creates a Clock anchored at base running speed times real time.
func New(base time.Time, speed int) (*Clock, error) {
	if speed < MinSpeedFactor || speed > MaxSpeedFactor {
		return nil, fmt.Errorf("speed factor %d out of range [%d, %d]", speed, MinSpeedFactor, MaxSpeedFactor)
	}
	return &Clock{base: base, speed: speed}, nil
}

// Speed returns the configured speed factor.
func (c *Clock) Speed() int {
	return c.speed
}

// Advance credits speed-scaled simulated time for one real-time interval.
func (c *Clock) Advance(realElapsed time.Duration) {
	c.pending.Add(int64(c.speed) * realElapsed.Microseconds())
}

// Sample returns the current simulated time, folding in pending credit when
// at least one whole simulated second has accumulated. The fold swaps out
// everything credited so far, including anything added between the load and
// the swap.
func (c *Clock) Sample() time.Time {
	if c.pending.Load() >= microsPerSecond {
		c.applied += time.Duration(c.pending.Swap(0)) * time.Microsecond
	}
	return c.base.Add(c.applied)
}

// EndOfDay returns the midnight following the clock base. When Sample
// reaches it, the reminder's day is over.
func (c *Clock) EndOfDay() time.Time {
	year, month, day := c.base.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, c.base.Location()).AddDate(0, 0, 1)
}

// Start launches the accelerator goroutine on the given real-time interval
// (DefaultTickInterval if zero). The goroutine runs for the remainder of the
// process; there is deliberately no stop or join, matching the fire-and-
// forget lifetime of the daemon.
func (c *Clock) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			c.Advance(interval)
		}
	}()
}
