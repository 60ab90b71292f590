// Package geocore exposes Go bindings for the native geocore geometry
// library. The package owns the flat binary codec for every value kind that
// crosses the boundary, the runtime discovery of the native module, and the
// ownership rules for buffers the native side allocates. The geometric
// algorithms themselves live in the native module; this package only moves
// encoded values in and out.
//
// The native module is located lazily on the first call. When it cannot be
// found the library stays usable in a degraded mode: every operation fails
// fast with ErrUnavailable and the probing history is available through
// Diagnostics.
package geocore
