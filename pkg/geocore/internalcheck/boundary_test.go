package internalcheck

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The native binding layer is the only place allowed to touch raw memory and
// the dynamic loader. Everything above it works on copied []byte values.
const bindingPkg = "github.com/meshkit/geocore-go/pkg/geocore/internal/native"

var restrictedImports = []string{
	"unsafe",
	"github.com/ebitengine/purego",
	"golang.org/x/sys/windows",
}

func TestRawMemoryConfinedToBinding(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/meshkit/geocore-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingPkg {
			continue
		}
		for _, restricted := range restrictedImports {
			if _, ok := pkg.Imports[restricted]; ok {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, restricted))
			}
		}
	}

	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("raw memory access outside the binding layer:\n%s", strings.Join(findings, "\n"))
	}
}

func TestInternalPackagesNotImportedByMocklib(t *testing.T) {
	// mocklib is a published fake; it may depend on the boundary types in
	// internal/native but must never reach the wire codec, whose layout is
	// an implementation detail of the encoders.
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, "github.com/meshkit/geocore-go/pkg/geocore/mocklib")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	const codecPkg = "github.com/meshkit/geocore-go/pkg/geocore/internal/codec"
	for _, pkg := range pkgs {
		if _, ok := pkg.Imports[codecPkg]; ok {
			t.Fatalf("%s must not import %s", pkg.PkgPath, codecPkg)
		}
	}
}
