package testutil

import (
	"strconv"
	"sync/atomic"
	"time"
)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SequentialIDs returns a generator yielding "1", "2", ... and is safe for
// concurrent use.
func SequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return strconv.FormatInt(n.Add(1), 10)
	}
}
