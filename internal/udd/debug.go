package udd

import (
	"fmt"
	"sync"
)

// DebugLog prints a formatted line when Debug is true. It is the core's
// only logging: no structured logger, no levels — grid builds and
// traversals are hot paths and this call is expected to be a no-op in
// production.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[udd] "+format+"\n", args...)
}

var debugOnce sync.Map // map[string]*sync.Once, keyed by format string

// DebugLogOnce prints a given format string at most once per process,
// regardless of how many times it's called with different args — useful
// inside per-ray hot loops where logging every call would drown the
// output.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	onceIface, _ := debugOnce.LoadOrStore(format, &sync.Once{})
	onceIface.(*sync.Once).Do(func() {
		fmt.Printf("[udd] "+format+"\n", args...)
	})
}
