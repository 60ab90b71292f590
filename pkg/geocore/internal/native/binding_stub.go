//go:build !darwin && !linux && !windows

package native

import (
	"fmt"
	"runtime"
)

// Stub loader for platforms without dynamic loading support. Resolution
// always lands in Unavailable with a diagnostic; the host stays usable.

func openModule(path string) (Module, error) {
	return nil, fmt.Errorf("native: dynamic loading not supported on %s", runtime.GOOS)
}

func moduleFileName() string { return "libgeocore.so" }
