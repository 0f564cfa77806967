package rapidutf

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// ForceImplementationEnv names the environment variable that, when set to
// the name of a supported implementation, overrides CPU based selection.
const ForceImplementationEnv = "RAPIDUTF_FORCE_IMPLEMENTATION"

// kernels are the inner chunk loops a backend provides. Every prefix kernel
// returns a byte count that covers whole chunks only; anything it does not
// accept is handled by the scalar reference code.
type kernels interface {
	// asciiPrefix accepts chunks of bytes below 0x80.
	asciiPrefix(src []byte) int
	// asciiPrefix16 accepts chunks of 16-bit units below 0x80.
	asciiPrefix16(src []byte, bigEndian bool) int
	// bmpPrefix16 accepts chunks of 16-bit units outside the surrogate range.
	bmpPrefix16(src []byte, bigEndian bool) int
	// asciiPrefix32 accepts chunks of 32-bit little-endian units below 0x80.
	asciiPrefix32(src []byte) int
	// validPrefix32 accepts chunks of 32-bit little-endian code points.
	validPrefix32(src []byte) int
	// base64Decode decodes blocks of alphabet characters, stopping at the
	// first block holding anything else or when dst cannot take a block.
	base64Decode(dst, src []byte, table *[256]byte) (nDst, nSrc int)
	// base64Encode encodes whole blocks of src.
	base64Encode(dst, src []byte, alphabet *[64]byte) (nDst, nSrc int)
}

// Implementation is a backend answering every call of the package. All
// implementations produce identical results; they differ in speed only.
type Implementation interface {
	Name() string
	Description() string
	// Supported reports whether the running CPU satisfies the backend's
	// requirements.
	Supported() bool

	kernels
}

// implementations is ordered from most to least specialized.
var implementations = []Implementation{
	&swarKernel{
		name:        "wide",
		description: "64-byte chunks for CPUs with wide vector registers",
		lanes:       8,
		supported:   hasWideRegisters,
	},
	&swarKernel{
		name:        "swar",
		description: "16-byte chunks using 64-bit integer arithmetic",
		lanes:       2,
		supported:   func() bool { return true },
	},
	fallbackKernel{},
}

type activeImplementation struct {
	Implementation
}

var active atomic.Pointer[activeImplementation]

// AvailableImplementations lists every backend compiled into the package,
// most specialized first, whether or not the CPU supports it.
func AvailableImplementations() []Implementation {
	return append([]Implementation(nil), implementations...)
}

// GetImplementation returns the backend with the given name.
func GetImplementation(name string) (Implementation, error) {
	for _, impl := range implementations {
		if strings.EqualFold(impl.Name(), name) {
			return impl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, name)
}

// ActiveImplementation returns the backend in use, selecting it on first
// call. Concurrent first calls may each probe but all observe the same
// choice.
func ActiveImplementation() Implementation {
	if a := active.Load(); a != nil {
		return a.Implementation
	}

	chosen := &activeImplementation{detectBestImplementation()}
	if active.CompareAndSwap(nil, chosen) {
		Logger().Debug("selected implementation",
			zap.String("name", chosen.Name()),
			zap.String("description", chosen.Description()))
		return chosen.Implementation
	}
	return active.Load().Implementation
}

// SetActiveImplementation replaces the backend in use. It is meant for
// tests and benchmarks.
func SetActiveImplementation(impl Implementation) error {
	if impl == nil {
		return fmt.Errorf("%w: nil", ErrUnknownImplementation)
	}
	if !impl.Supported() {
		return fmt.Errorf("implementation %q is not supported on this CPU", impl.Name())
	}
	active.Store(&activeImplementation{impl})
	Logger().Debug("implementation overridden", zap.String("name", impl.Name()))
	return nil
}

func detectBestImplementation() Implementation {
	if name := os.Getenv(ForceImplementationEnv); name != "" {
		impl, err := GetImplementation(name)
		switch {
		case err != nil:
			Logger().Warn("ignoring forced implementation", zap.String("env", ForceImplementationEnv), zap.Error(err))
		case !impl.Supported():
			Logger().Warn("ignoring unsupported forced implementation", zap.String("name", impl.Name()))
		default:
			return impl
		}
	}

	for _, impl := range implementations {
		if impl.Supported() {
			return impl
		}
	}
	return fallbackKernel{}
}

func activeKernels() kernels {
	return ActiveImplementation()
}
