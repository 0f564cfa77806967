//go:build arm64

package rapidutf

import "golang.org/x/sys/cpu"

// hasWideRegisters reports Advanced SIMD, present on every ARMv8 core that
// runs Go but exposed by the probe so that emulators can opt out.
func hasWideRegisters() bool {
	return cpu.ARM64.HasASIMD
}
