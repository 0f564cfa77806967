package rapidutf

// fallbackKernel accepts nothing in bulk, so every call runs the scalar
// reference code. It defines the results all other backends must match.
type fallbackKernel struct{}

func (fallbackKernel) Name() string        { return "fallback" }
func (fallbackKernel) Description() string { return "portable scalar reference" }
func (fallbackKernel) Supported() bool     { return true }

func (fallbackKernel) asciiPrefix([]byte) int         { return 0 }
func (fallbackKernel) asciiPrefix16([]byte, bool) int { return 0 }
func (fallbackKernel) bmpPrefix16([]byte, bool) int   { return 0 }
func (fallbackKernel) asciiPrefix32([]byte) int       { return 0 }
func (fallbackKernel) validPrefix32([]byte) int       { return 0 }

func (fallbackKernel) base64Decode(_, _ []byte, _ *[256]byte) (int, int) {
	return 0, 0
}

func (fallbackKernel) base64Encode(_, _ []byte, _ *[64]byte) (int, int) {
	return 0, 0
}
