//go:build !(rp2040 || rp2350)

package power

// DefaultSteps is empty off-target; a host has nothing to trim.
func DefaultSteps() []Step { return nil }
