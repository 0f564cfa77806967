//go:build amd64

package rapidutf

import "golang.org/x/sys/cpu"

// hasWideRegisters reports AVX2, where the 64-byte chunk kernel keeps the
// load ports busy.
func hasWideRegisters() bool {
	return cpu.X86.HasAVX2
}
