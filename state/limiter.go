package state

import (
	"sync"
	"time"
)

// Limiter admits at most len(datetime) requests within the trailing window.
// datetime is a ring of the last admissions ordered by insertion; the slot
// after pointer always holds the oldest one, so a single comparison against
// it decides the sliding window verdict.
type Limiter struct {
	mx       sync.Mutex
	window   time.Duration
	datetime []time.Time
	pointer  int
}

func NewLimiter(maxCount int, window time.Duration) *Limiter {
	if window == 0 && maxCount != 0 {
		maxCount = 1
	}
	return &Limiter{
		window:   window,
		datetime: make([]time.Time, maxCount),
		pointer:  -1,
	}
}

// Allow decides admission for a request observed at now. Check and append
// are one critical section, two concurrent calls can't share the last slot.
// On rejection it reports how long until the oldest admission leaves the
// window.
func (lim *Limiter) Allow(now time.Time) (bool, time.Duration) {
	lim.mx.Lock()
	defer lim.mx.Unlock()

	if len(lim.datetime) == 0 {
		return false, lim.window
	}

	pointer := lim.pointer + 1
	if pointer >= len(lim.datetime) {
		pointer = 0
	}
	oldest := lim.datetime[pointer]
	if !oldest.IsZero() && now.Sub(oldest) < lim.window {
		return false, lim.window - now.Sub(oldest)
	}

	lim.pointer = pointer
	lim.datetime[pointer] = now
	return true, 0
}

// Remaining counts free slots at now, admissions older than the window
// included.
func (lim *Limiter) Remaining(now time.Time) int {
	lim.mx.Lock()
	defer lim.mx.Unlock()

	remaining := 0
	for _, datetime := range lim.datetime {
		if datetime.IsZero() || now.Sub(datetime) >= lim.window {
			remaining++
		}
	}
	return remaining
}
