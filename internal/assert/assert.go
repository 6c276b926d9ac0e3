// Package assert holds the programmer-misuse guards used across the art
// and node packages. It panics on violated invariants; it is not a
// validation layer for untrusted input.
package assert

import "fmt"

// Assert panics if cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("art: internal assertion failed: "+format, args...))
	}
}
