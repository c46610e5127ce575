//go:build !release

package framealloc

import "fmt"

// debugChecks enables the checks that cost more than a bounds test,
// such as double-free detection. Build with -tags release to drop them.
const debugChecks = true

// invariant panics if cond is false.
//
// invariant is a no-op when compiled with the release build tag.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintln("framealloc: assertion failed:", fmt.Sprintf(format, args...)))
	}
}
