package game

import (
	"time"
)

// spinWindow is how close to the deadline Wait stops sleeping and busy-waits.
const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the frame rate using a hybrid sleep/spin wait.
type FPSLimiter struct {
	limit func() int
	next  time.Time
}

// NewFPSLimiter creates a limiter that reads the frame cap from limit on every
// Wait, so the cap can change at runtime. A cap <= 0 disables limiting.
func NewFPSLimiter(limit func() int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame is due.
func (f *FPSLimiter) Wait() {
	fps := f.limit()
	if fps <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(fps)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// After a hitch, resync instead of racing to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
