//go:build !(amd64 || arm64)

package rapidutf

// No wide kernel on this platform.
func hasWideRegisters() bool { return false }
