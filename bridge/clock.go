package bridge

import "time"

// Clock supplies wall-clock milliseconds since the epoch. Monotonicity is not
// required; the cooldown tolerates backward jumps.
type Clock interface {
	NowMillis() int64
}

type wallClock struct{}

func (wallClock) NowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// WallClock returns the system clock.
func WallClock() Clock {
	return wallClock{}
}
