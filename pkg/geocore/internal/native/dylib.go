//go:build darwin || linux || windows

package native

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Required symbols every geocore module exports. geocore_release is the
// designated deallocator for every buffer the module hands to the host;
// a module missing it is rejected at load time.
const (
	releaseSymbol = "geocore_release"
	versionSymbol = "geocore_version"
)

// dylib is the shared-library implementation of Module. All native entry
// points share one calling convention: inputs as (pointer, length) pairs, an
// optional trailing C-string path, per-output (pointer*, length*) out
// parameters, and a boolean result.
type dylib struct {
	handle  uintptr
	release uintptr

	mu   sync.Mutex
	syms map[string]uintptr
}

// openModule loads the shared library at path and validates the required
// symbols. It is the default Resolver loader.
func openModule(path string) (Module, error) {
	h, err := openLibrary(path)
	if err != nil {
		return nil, err
	}
	rel, err := lookupSymbol(h, releaseSymbol)
	if err != nil {
		return nil, fmt.Errorf("required symbol %s: %w", releaseSymbol, err)
	}
	return &dylib{handle: h, release: rel, syms: make(map[string]uintptr)}, nil
}

func (d *dylib) symbol(name string) (uintptr, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn, ok := d.syms[name]; ok {
		return fn, nil
	}
	fn, err := lookupSymbol(d.handle, name)
	if err != nil {
		return 0, err
	}
	d.syms[name] = fn
	return fn, nil
}

func (d *dylib) Invoke(symbol string, inputs [][]byte, path string, numOutputs int) (Result, error) {
	fn, err := d.symbol(symbol)
	if err != nil {
		return Result{}, err
	}

	args := make([]uintptr, 0, 2*len(inputs)+1+2*numOutputs)
	for _, in := range inputs {
		if len(in) == 0 {
			args = append(args, 0, 0)
			continue
		}
		args = append(args, uintptr(unsafe.Pointer(&in[0])), uintptr(len(in)))
	}
	var cpath []byte
	if path != "" {
		cpath = append([]byte(path), 0)
		args = append(args, uintptr(unsafe.Pointer(&cpath[0])))
	}
	outPtrs := make([]uintptr, numOutputs)
	outLens := make([]int32, numOutputs)
	for i := 0; i < numOutputs; i++ {
		args = append(args, uintptr(unsafe.Pointer(&outPtrs[i])), uintptr(unsafe.Pointer(&outLens[i])))
	}

	r1, _, _ := purego.SyscallN(fn, args...)
	runtime.KeepAlive(inputs)
	runtime.KeepAlive(cpath)
	runtime.KeepAlive(outPtrs)
	runtime.KeepAlive(outLens)

	res := Result{OK: byte(r1) != 0}
	if res.OK && numOutputs > 0 {
		res.Outputs = make([]RawBuffer, numOutputs)
		for i := range res.Outputs {
			res.Outputs[i] = RawBuffer{Ptr: outPtrs[i], Size: outLens[i]}
		}
	}
	return res, nil
}

func (d *dylib) Read(b RawBuffer) []byte {
	if b.IsNull() || b.Size <= 0 {
		return nil
	}
	out := make([]byte, b.Size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(b.Ptr)), int(b.Size)))
	return out
}

func (d *dylib) Release(b RawBuffer) {
	if b.IsNull() {
		return
	}
	purego.SyscallN(d.release, b.Ptr)
}

func (d *dylib) Version() string {
	fn, err := d.symbol(versionSymbol)
	if err != nil {
		return ""
	}
	p, _, _ := purego.SyscallN(fn)
	return goString(p)
}

// goString copies a NUL-terminated C string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
