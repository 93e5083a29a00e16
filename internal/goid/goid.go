// Package goid extracts the numeric identity of the calling goroutine.
//
// The runtime does not expose goroutine ids on purpose; they must never be
// used for scheduling or storage. devguard uses them for exactly one thing:
// telling apart the goroutine that owns the graphics device from everyone
// else while resources load, so a violation can be reported at its origin.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var prefix = []byte("goroutine ")

// ID returns the id of the calling goroutine, parsed from the first line of
// the runtime stack header ("goroutine 18 [running]:").
func ID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], prefix)
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
