package native

import "sync"

// DefaultDiagnosticCapacity bounds the diagnostic log when the host does not
// configure one. Old entries are evicted first.
const DefaultDiagnosticCapacity = 64

// DiagnosticLog is a mutex-guarded bounded FIFO of human-readable probing
// and dispatch diagnostics. It exists so a long-running host can inspect why
// the native module is unavailable without the log growing without bound.
type DiagnosticLog struct {
	mu      sync.Mutex
	cap     int
	entries []string
}

// NewDiagnosticLog returns a log bounded to capacity entries.
func NewDiagnosticLog(capacity int) *DiagnosticLog {
	if capacity <= 0 {
		capacity = DefaultDiagnosticCapacity
	}
	return &DiagnosticLog{cap: capacity}
}

// Append records a line, evicting the oldest entries past capacity.
func (l *DiagnosticLog) Append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, line)
	if n := len(l.entries) - l.cap; n > 0 {
		l.entries = append(l.entries[:0], l.entries[n:]...)
	}
}

// Snapshot returns a copy of the current entries, oldest first.
func (l *DiagnosticLog) Snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear discards all entries.
func (l *DiagnosticLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}
