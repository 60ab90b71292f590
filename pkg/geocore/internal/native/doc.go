// Package native owns everything that touches the boundary to the native
// geocore module: locating and loading the shared library, invoking its
// entry points, and enforcing the ownership protocol for buffers the native
// side allocates.
//
// The package deliberately concentrates all unsafe and loader-specific code;
// nothing outside it may import unsafe or the purego loader (enforced by the
// internalcheck tests).
package native
