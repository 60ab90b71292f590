// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests enforced over the geocore-go source
// tree. It is not intended for external use and the API may change without
// notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the geocore library. Use the public API
// provided by pkg/geocore and its subpackages instead.
package internalcheck
