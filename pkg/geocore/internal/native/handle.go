package native

// Output is a borrowed handle to a single native-allocated output buffer.
// It is constructed by the dispatcher immediately after a successful call
// and must be consumed exactly once before it goes out of scope. The only
// operations are copy-and-release (the default) and copy-retained (the
// narrow exception for entry points whose contract says the native side
// keeps and later frees the allocation).
type Output struct {
	mod      Module
	buf      RawBuffer
	consumed bool
}

// NewOutput wraps a raw output buffer received from mod.
func NewOutput(mod Module, buf RawBuffer) *Output {
	return &Output{mod: mod, buf: buf}
}

// CopyAndRelease copies the buffer into Go memory and releases the native
// allocation through the module's deallocator. The release step is
// unconditional once this method is entered: it runs even when the copy is
// skipped for a zero-length buffer, because the allocation may still exist.
// A second consume attempt returns ErrConsumed.
func (o *Output) CopyAndRelease() ([]byte, error) {
	if o.consumed {
		return nil, ErrConsumed
	}
	o.consumed = true
	data := o.mod.Read(o.buf)
	o.mod.Release(o.buf)
	return data, nil
}

// CopyRetained copies the buffer without releasing it. Only used for entry
// points explicitly flagged as retaining ownership on the native side.
func (o *Output) CopyRetained() ([]byte, error) {
	if o.consumed {
		return nil, ErrConsumed
	}
	o.consumed = true
	return o.mod.Read(o.buf), nil
}
