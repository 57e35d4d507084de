package server

import "time"

const (
	readBackoffInitial = 10 * time.Millisecond
	readBackoffMax     = time.Second
)

// readBackoff returns the pause after the given number of consecutive read
// failures on one channel. The delay doubles per failure up to readBackoffMax.
func readBackoff(failures int) time.Duration {
	if failures < 1 {
		return 0
	}
	delay := readBackoffInitial
	for i := 1; i < failures && delay < readBackoffMax; i++ {
		delay *= 2
	}
	if delay > readBackoffMax {
		delay = readBackoffMax
	}
	return delay
}
