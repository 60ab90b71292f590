package geocore

import (
	"github.com/meshkit/geocore-go/pkg/geocore/internal/native"
	"github.com/meshkit/geocore-go/pkg/geocore/logging"
)

// Library is a handle to the native geocore module. Construction never
// fails and never touches the filesystem: the module is located lazily on
// the first boundary call or readiness query, exactly once, and a failed
// resolution leaves the library in a degraded mode where every operation
// returns ErrUnavailable.
//
// A Library is safe for concurrent use. Each call runs synchronously on the
// calling goroutine with only locally scoped buffers; the resolution state
// machine and the diagnostic log are the only shared state.
type Library struct {
	resolver   *native.Resolver
	dispatcher *native.Dispatcher
	log        logging.Logger
}

// New returns a library configured by cfg.
func New(cfg Config) *Library {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	r := native.NewResolver(native.Options{
		SearchDirs:         cfg.SearchPaths,
		LibraryName:        cfg.LibraryName,
		DiagnosticCapacity: cfg.DiagnosticCapacity,
		Logger:             log,
	})
	return &Library{
		resolver:   r,
		dispatcher: native.NewDispatcher(r, log),
		log:        log,
	}
}

// newWithModule wires a library directly to a loaded module, bypassing
// resolution. Tests use it through NewTestLibrary.
func newWithModule(cfg Config, m native.Module, path string) *Library {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	r := native.NewResolverWithModule(m, path)
	return &Library{
		resolver:   r,
		dispatcher: native.NewDispatcher(r, log),
		log:        log,
	}
}

// Ready reports whether the native module is loaded. Like a boundary call,
// it triggers resolution on first use.
func (l *Library) Ready() bool { return l.resolver.Ready() }

// LoadedPath returns the path the native module was loaded from, empty when
// it is not loaded. It does not trigger resolution.
func (l *Library) LoadedPath() string { return l.resolver.LoadedPath() }

// NativeVersion returns the loaded module's version string, empty when the
// module is not loaded or exports no version.
func (l *Library) NativeVersion() string { return l.resolver.NativeVersion() }

// Diagnostics returns a snapshot of the bounded diagnostic log, oldest
// entry first.
func (l *Library) Diagnostics() []string { return l.resolver.Diagnostics() }

// ClearDiagnostics discards the diagnostic log.
func (l *Library) ClearDiagnostics() { l.resolver.ClearDiagnostics() }
