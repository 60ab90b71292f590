// Package logging defines the minimal logging surface used by the geocore
// bindings. It is a thin veneer over log/slog so applications can plug in
// their own handler or silence the bindings entirely.
package logging
