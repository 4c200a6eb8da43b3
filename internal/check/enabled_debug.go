//go:build debug

package check

// Enabled - Precondition checks are active
const Enabled = true
