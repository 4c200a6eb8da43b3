//go:build !debug

package check

// Enabled - Precondition checks are compiled out
const Enabled = false
