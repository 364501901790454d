package game

import "time"

// Clock supplies monotonic millisecond timestamps for the gravity scheduler
// and the post-spawn grace period. Injected so timer behavior is testable
// without real waiting.
type Clock interface {
	NowMillis() int64
}

type realClock struct {
	start time.Time
}

// NewRealClock returns a Clock backed by the monotonic system clock.
func NewRealClock() Clock {
	return &realClock{start: time.Now()}
}

func (c *realClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a test clock advanced by hand.
type ManualClock struct {
	Millis int64
}

func (c *ManualClock) NowMillis() int64 {
	return c.Millis
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.Millis += ms
}
