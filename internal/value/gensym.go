package value

import "sync/atomic"

var nextIDCounter int64

// NextID is the reader's unique-id source (spec §6), used to make
// generated symbol names unique across a process.
func NextID() int64 {
	return atomic.AddInt64(&nextIDCounter, 1)
}
