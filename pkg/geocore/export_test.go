package geocore

import "github.com/meshkit/geocore-go/pkg/geocore/internal/native"

// NewTestLibrary wires a library directly to a module implementation,
// bypassing filesystem resolution. Tests pair it with mocklib.
func NewTestLibrary(cfg Config, m native.Module, path string) *Library {
	return newWithModule(cfg, m, path)
}
