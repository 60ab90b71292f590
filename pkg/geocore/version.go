package geocore

// WrapperVersion is the version of these Go bindings. The native module
// reports its own version through Library.NativeVersion; the two are
// released independently.
const WrapperVersion = "0.4.0"
