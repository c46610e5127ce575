//go:build release

package framealloc

const debugChecks = false

func invariant(cond bool, format string, args ...any) {
	// no-op
}
