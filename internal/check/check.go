// Package check holds precondition checks that are only active in builds tagged with debug.
// Release builds compile every check to nothing and rely on the runtime's own bounds checking.
package check

import "fmt"

// That - Panics with a formatted message if cond is false and checks are enabled
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Index - Panics if i is not within [0, size) and checks are enabled
func Index(i, size int) {
	if Enabled && (i < 0 || i >= size) {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, size))
	}
}
