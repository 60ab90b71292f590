package native

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/meshkit/geocore-go/pkg/geocore/logging"
)

// State is the resolution state machine position. Ready and Unavailable are
// terminal; there is no transition out of either.
type State int32

const (
	StateUninitialized State = iota
	StateProbing
	StateReady
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateProbing:
		return "probing"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Options configures a Resolver.
type Options struct {
	// SearchDirs are extra candidate directories probed before the standard
	// locations.
	SearchDirs []string

	// LibraryName overrides the platform base file name of the module.
	LibraryName string

	// DiagnosticCapacity bounds the diagnostic log.
	DiagnosticCapacity int

	// Logger receives probing events. Defaults to a discarding logger; the
	// diagnostic log is populated either way.
	Logger logging.Logger

	// Open overrides the platform loader. Tests use it to simulate load
	// outcomes without a real shared library on disk.
	Open func(path string) (Module, error)
}

// Resolver is the one-time, thread-safe native module resolution state
// machine. The first Module call (or Ready query) triggers probing exactly
// once, no matter how many goroutines race to trigger it.
type Resolver struct {
	opts Options
	log  logging.Logger
	diag *DiagnosticLog

	ready atomic.Bool // fast path: set only after module is published

	mu     sync.Mutex
	state  State
	module Module
	path   string
}

// NewResolver returns a resolver in the Uninitialized state.
func NewResolver(opts Options) *Resolver {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{
		opts: opts,
		log:  log,
		diag: NewDiagnosticLog(opts.DiagnosticCapacity),
	}
}

// NewResolverWithModule returns a resolver already in the Ready state bound
// to the given module. Used by tests and embedders that load the module
// through other means.
func NewResolverWithModule(m Module, path string) *Resolver {
	r := NewResolver(Options{})
	r.module = m
	r.path = path
	r.state = StateReady
	r.ready.Store(true)
	return r
}

// Module returns the loaded module, probing on first use. Once resolution
// lands in Unavailable every subsequent call fails fast with ErrUnavailable.
func (r *Resolver) Module() (Module, error) {
	if r.ready.Load() {
		return r.module, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateReady:
		return r.module, nil
	case StateUnavailable:
		return nil, ErrUnavailable
	}
	r.state = StateProbing
	r.probe()
	if r.state == StateReady {
		return r.module, nil
	}
	return nil, ErrUnavailable
}

// Ready reports whether the module is loaded, triggering resolution if it
// has not run yet.
func (r *Resolver) Ready() bool {
	_, err := r.Module()
	return err == nil
}

// State returns the current state without triggering resolution.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LoadedPath returns the path the module was loaded from, empty if it is
// not loaded.
func (r *Resolver) LoadedPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Diagnostics returns a snapshot of the diagnostic log, oldest entry first.
func (r *Resolver) Diagnostics() []string { return r.diag.Snapshot() }

// ClearDiagnostics discards the diagnostic log.
func (r *Resolver) ClearDiagnostics() { r.diag.Clear() }

// Log exposes the diagnostic log handle for components that append to it.
func (r *Resolver) Log() *DiagnosticLog { return r.diag }

type candidate struct {
	dir  string // empty for the bare-name fallback
	note string
}

func (r *Resolver) candidates() []candidate {
	var cands []candidate
	for _, d := range r.opts.SearchDirs {
		cands = append(cands, candidate{dir: d, note: "configured search path"})
	}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		cands = append(cands,
			candidate{dir: exeDir, note: "executable directory"},
			candidate{dir: filepath.Dir(exeDir), note: "executable parent directory"},
		)
	} else {
		r.diag.Append(fmt.Sprintf("resolve: executable path unknown: %v", err))
	}
	if cwd, err := os.Getwd(); err == nil {
		cands = append(cands, candidate{dir: cwd, note: "working directory"})
	}
	cands = append(cands, candidate{note: "system loader search"})
	return cands
}

// probe runs the platform probing pass. Called with the lock held, exactly
// once per Resolver lifetime. Panics raised while probing are converted into
// diagnostics; probing never lets an exception escape, so the host stays
// usable in degraded mode.
func (r *Resolver) probe() {
	defer func() {
		if p := recover(); p != nil {
			r.diag.Append(fmt.Sprintf("resolve: probing panicked: %v", p))
			r.log.Error(context.Background(), "native module probing panicked", "panic", p)
			r.state = StateUnavailable
		}
	}()

	name := r.opts.LibraryName
	if name == "" {
		name = moduleFileName()
	}
	open := r.opts.Open
	if open == nil {
		open = openModule
	}

	for _, c := range r.candidates() {
		full := name
		if c.dir != "" {
			full = filepath.Join(c.dir, name)
			if _, err := os.Stat(full); err != nil {
				r.diag.Append(fmt.Sprintf("resolve: %s (%s): not present", full, c.note))
				continue
			}
		}
		mod, err := open(full)
		if err != nil {
			r.diag.Append(fmt.Sprintf("resolve: %s (%s): load failed: %v", full, c.note, err))
			continue
		}
		r.module = mod
		r.path = full
		r.state = StateReady
		r.ready.Store(true)
		r.diag.Append(fmt.Sprintf("resolve: loaded %s (%s)", full, c.note))
		r.log.Info(context.Background(), "native module loaded", "path", full)
		return
	}

	r.diag.Append("resolve: native module not found; boundary calls disabled")
	r.log.Warn(context.Background(), "native module not found; boundary calls disabled")
	r.state = StateUnavailable
}

// NativeVersion reports the loaded module's version string without
// triggering resolution.
func (r *Resolver) NativeVersion() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateReady {
		return ""
	}
	return r.module.Version()
}
