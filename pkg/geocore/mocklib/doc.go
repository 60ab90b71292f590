// Package mocklib provides an in-process fake of the native geocore module
// for tests. Operations are plain Go functions registered per symbol, and
// every "native" allocation handed to the host is tracked, so tests can
// assert the exactly-once release property and failure atomicity without a
// real shared library on disk.
package mocklib
