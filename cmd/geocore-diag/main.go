// Command geocore-diag reports whether the native geocore module can be
// located on this machine and prints the probing diagnostics. Operators run
// it on hosts where boundary calls come back unavailable.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/meshkit/geocore-go/pkg/geocore"
	"github.com/meshkit/geocore-go/pkg/geocore/logging"
)

func main() {
	cfg, err := geocore.DefaultConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	cfg.Logger = logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	lib := geocore.New(cfg)
	fmt.Printf("bindings version: %s\n", geocore.WrapperVersion)

	if lib.Ready() {
		fmt.Printf("native module: ready\n")
		fmt.Printf("loaded from:   %s\n", lib.LoadedPath())
		if v := lib.NativeVersion(); v != "" {
			fmt.Printf("native version: %s\n", v)
		}
	} else {
		fmt.Printf("native module: unavailable\n")
	}

	diags := lib.Diagnostics()
	if len(diags) > 0 {
		fmt.Println("\nresolution diagnostics:")
		for _, d := range diags {
			fmt.Printf("  %s\n", d)
		}
	}

	fmt.Println("\ncataloged operations:")
	for _, op := range geocore.Operations() {
		fmt.Printf("  %-20s %s\n", op.Name, op.Symbol)
	}

	if !lib.Ready() {
		os.Exit(1)
	}
}
