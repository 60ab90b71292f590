package geocore

import "errors"

// ErrUnavailable reports that the native module could not be located or
// loaded. The probing history explaining why is available through
// Library.Diagnostics.
var ErrUnavailable = errors.New("geocore: native module unavailable")

// ErrCallFailed reports that a native operation returned failure. No partial
// output is ever surfaced alongside it.
var ErrCallFailed = errors.New("geocore: native call failed")

// ErrKindMismatch reports a buffer whose kind tag does not match the decoder
// it was handed to.
var ErrKindMismatch = errors.New("geocore: value kind mismatch")
