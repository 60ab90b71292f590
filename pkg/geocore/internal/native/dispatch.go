package native

import (
	"context"
	"fmt"

	"github.com/meshkit/geocore-go/pkg/geocore/logging"
)

// OpDesc describes one cataloged native operation: its logical name, the
// symbol resolved through the platform binding, and the shape of its
// boundary signature.
type OpDesc struct {
	Name       string
	Symbol     string
	NumOutputs int

	// TakesPath marks operations that receive a file path as a trailing
	// C-string argument (mesh file I/O).
	TakesPath bool

	// NativeRetains marks the narrow exception where the native side keeps
	// ownership of the output allocations and frees them itself; outputs are
	// copied but not released.
	NativeRetains bool
}

// Dispatcher invokes cataloged operations against the resolved module,
// applying the ownership protocol to every output buffer. It holds no state
// beyond the resolver handle and a logger, so calls from multiple goroutines
// are independent.
type Dispatcher struct {
	resolver *Resolver
	log      logging.Logger
}

// NewDispatcher binds a dispatcher to a resolver.
func NewDispatcher(r *Resolver, log logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Dispatcher{resolver: r, log: log}
}

// Call runs one boundary call: resolve the module (failing fast when it is
// unavailable), invoke the entry point with the encoded inputs, then copy
// and release every output. On native failure no output is probed; the
// native side's contract is a clean failure with its own partial
// allocations already released.
func (d *Dispatcher) Call(ctx context.Context, op OpDesc, inputs [][]byte, path string) ([][]byte, error) {
	mod, err := d.resolver.Module()
	if err != nil {
		d.log.Debug(ctx, "boundary call rejected", "op", op.Name, "err", err)
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	res, err := mod.Invoke(op.Symbol, inputs, path, op.NumOutputs)
	if err != nil {
		d.resolver.Log().Append(fmt.Sprintf("dispatch: %s: %v", op.Name, err))
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	if !res.OK {
		return nil, fmt.Errorf("%s: %w", op.Name, ErrCallFailed)
	}

	outs := make([][]byte, len(res.Outputs))
	for i, rb := range res.Outputs {
		h := NewOutput(mod, rb)
		var data []byte
		if op.NativeRetains {
			data, err = h.CopyRetained()
		} else {
			data, err = h.CopyAndRelease()
		}
		if err != nil {
			return nil, fmt.Errorf("%s output %d: %w", op.Name, i, err)
		}
		outs[i] = data
	}
	return outs, nil
}
