package mocklib

import (
	"fmt"
	"sync"

	"github.com/meshkit/geocore-go/pkg/geocore/internal/native"
)

// OpFunc implements one fake native operation. It receives the raw input
// buffers and optional path argument and returns the output payloads plus a
// success flag. Returning ok=false simulates a clean native failure: no
// allocation is handed to the host, matching the atomic-failure contract.
type OpFunc func(inputs [][]byte, path string) (outputs [][]byte, ok bool)

// Module is a fake native module with allocation accounting. It implements
// the same boundary contract as the real shared-library binding: outputs are
// "allocated" on the fake native heap and must be released exactly once
// through Release.
type Module struct {
	mu         sync.Mutex
	ops        map[string]OpFunc
	allocs     map[uintptr][]byte
	next       uintptr
	frees      int
	doubleFree int
}

// New returns an empty fake module.
func New() *Module {
	return &Module{
		ops:    make(map[string]OpFunc),
		allocs: make(map[uintptr][]byte),
		next:   0x1000,
	}
}

// Register binds a fake implementation to a native symbol name.
func (m *Module) Register(symbol string, fn OpFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops[symbol] = fn
}

// Invoke implements native.Module.
func (m *Module) Invoke(symbol string, inputs [][]byte, path string, numOutputs int) (native.Result, error) {
	m.mu.Lock()
	fn, ok := m.ops[symbol]
	m.mu.Unlock()
	if !ok {
		return native.Result{}, fmt.Errorf("mocklib: unresolved symbol %q", symbol)
	}

	outputs, callOK := fn(inputs, path)
	if !callOK {
		return native.Result{OK: false}, nil
	}
	if len(outputs) != numOutputs {
		return native.Result{}, fmt.Errorf("mocklib: %s produced %d outputs, dispatcher expected %d",
			symbol, len(outputs), numOutputs)
	}

	res := native.Result{OK: true, Outputs: make([]native.RawBuffer, numOutputs)}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, out := range outputs {
		if len(out) == 0 {
			// Empty outputs cross the boundary as a null pointer; there is
			// nothing to release on the host side.
			res.Outputs[i] = native.RawBuffer{}
			continue
		}
		ptr := m.next
		m.next += uintptr(len(out) + 16)
		stored := make([]byte, len(out))
		copy(stored, out)
		m.allocs[ptr] = stored
		res.Outputs[i] = native.RawBuffer{Ptr: ptr, Size: int32(len(out))}
	}
	return res, nil
}

// Read implements native.Module.
func (m *Module) Read(b native.RawBuffer) []byte {
	if b.IsNull() || b.Size <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.allocs[b.Ptr]
	if !ok {
		panic(fmt.Sprintf("mocklib: read of freed or unknown buffer %#x", b.Ptr))
	}
	out := make([]byte, len(stored))
	copy(out, stored)
	return out
}

// Release implements native.Module. Releasing a null buffer is a no-op;
// a second release of the same pointer is recorded as a double free.
func (m *Module) Release(b native.RawBuffer) {
	if b.IsNull() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.allocs[b.Ptr]; !ok {
		m.doubleFree++
		return
	}
	delete(m.allocs, b.Ptr)
	m.frees++
}

// Version implements native.Module.
func (m *Module) Version() string { return "mocklib" }

// Outstanding reports the number of live fake-native allocations.
func (m *Module) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.allocs)
}

// Frees reports how many releases have been observed.
func (m *Module) Frees() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frees
}

// DoubleFrees reports releases of already-freed or unknown pointers.
func (m *Module) DoubleFrees() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doubleFree
}
