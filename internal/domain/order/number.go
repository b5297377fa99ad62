package order

import (
	"fmt"
	"sync/atomic"
	"time"
)

// seq is seeded from the clock at startup so numbers stay unique across
// process restarts; within a process the atomic counter guarantees that two
// orders created in the same millisecond never share a number.
var seq atomic.Uint64

func init() {
	seq.Store(uint64(time.Now().UnixNano()))
}

// GenerateNumber returns a human-readable unique order number, e.g.
// ORD-20250901-1A2B3C. The date part keeps it searchable; the suffix comes
// from the process-wide counter. The orders table carries a unique
// constraint as the final backstop.
func GenerateNumber(now time.Time) string {
	n := seq.Add(1)
	return fmt.Sprintf("ORD-%s-%06X", now.Format("20060102"), n&0xFFFFFF)
}
