//go:build darwin || linux

package native

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

// moduleFileName is the platform base name of the native module.
func moduleFileName() string {
	if runtime.GOOS == "darwin" {
		return "libgeocore.dylib"
	}
	return "libgeocore.so"
}
