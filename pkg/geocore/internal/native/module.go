package native

import "errors"

// ErrUnavailable reports that resolution finished in the Unavailable state.
var ErrUnavailable = errors.New("native: module unavailable")

// ErrCallFailed reports that a native entry point returned failure.
var ErrCallFailed = errors.New("native: call failed")

// ErrConsumed reports a second consume attempt on an output handle.
var ErrConsumed = errors.New("native: output already consumed")

// RawBuffer is an (address, length) pair exactly as it crossed the
// boundary. It is meaningless outside the Module that produced it.
type RawBuffer struct {
	Ptr  uintptr
	Size int32
}

// IsNull reports whether the buffer carries no allocation.
func (b RawBuffer) IsNull() bool { return b.Ptr == 0 }

// Result is the outcome of a single native invocation. Outputs is populated
// only when OK is true: on failure the native side releases its own partial
// allocations before returning, so the host never probes failed
// out-parameters.
type Result struct {
	OK      bool
	Outputs []RawBuffer
}

// Module is a loaded native geometry module. Implementations are the
// platform shared-library binding and the in-process fake used by tests.
type Module interface {
	// Invoke calls the entry point named by symbol. Each input buffer is
	// passed as an (address, length) pair that the native side may read only
	// for the duration of the call; path, when non-empty, is passed as a
	// trailing C string. numOutputs out-parameter pairs follow.
	Invoke(symbol string, inputs [][]byte, path string, numOutputs int) (Result, error)

	// Read copies the bytes of a native-allocated buffer into Go memory.
	// A null or zero-length buffer yields nil.
	Read(b RawBuffer) []byte

	// Release returns a native-allocated buffer through the module's
	// designated deallocator. Releasing a null buffer is a no-op.
	Release(b RawBuffer)

	// Version reports the native module's version string, empty if the
	// module does not export one.
	Version() string
}
