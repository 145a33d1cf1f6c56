package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cara/types"
)

// Tracer provides function-call tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	depth   int
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs entry into a user-defined function
func Call(name string, argc int) {
	t := globalTracer
	if t == nil || !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "%s-> %s/%d\n", strings.Repeat("  ", t.depth), name, argc)
	t.depth++
}

// Return logs exit from a user-defined function
// val is nil when the call ended with an error or an unconsumed signal
func Return(name string, val types.Value) {
	t := globalTracer
	if t == nil || !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth > 0 {
		t.depth--
	}
	if val == nil {
		fmt.Fprintf(t.writer, "%s<- %s !\n", strings.Repeat("  ", t.depth), name)
		return
	}
	fmt.Fprintf(t.writer, "%s<- %s = %s\n", strings.Repeat("  ", t.depth), name, val.String())
}
