// Package registry keeps track of every kernel set compiled into the binary.
//
// The hot path never consults the registry: the dispatch layer binds one
// kernel set at build time. The registry exists so that tests and the
// diagnostics command can enumerate the kernel sets that were built in,
// check which of them the host can execute, and cross-check them against
// the scalar reference.
//
// Kernel set packages register themselves via init() functions.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-math3d/internal/cpu"
)

// Entry represents one registered kernel set.
type Entry struct {
	// Name is a human-readable identifier for this kernel set (e.g., "avx").
	Name string

	// SIMDLevel indicates the instruction set tier the kernel set requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines ordering when several kernel sets are usable.
	// Higher priority kernel sets are preferred. Suggested priorities:
	//   - scalar (SIMDNone): 0
	//   - SSE: 10
	//   - AVX: 20
	Priority int

	// F32 is the single-precision kernel set.
	F32 Set[float32]

	// F64 is the double-precision kernel set.
	F64 Set[float64]
}

// Registry manages the registration and lookup of kernel sets.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry every kernel set package registers with.
var Global = &Registry{}

// Register adds a kernel set to the registry.
//
// This function is typically called from init() functions in the kernel set
// packages. It is safe to call concurrently.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority kernel set the given CPU can execute,
// or nil when none is registered.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}

// Find returns the kernel set registered under name.
func (r *Registry) Find(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Insertion sort; there are at most three entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *Registry) ListEntries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Supported returns the registered entries the given CPU can execute,
// sorted by priority.
func (r *Registry) Supported(features cpu.Features) []Entry {
	var out []Entry
	for _, entry := range r.ListEntries() {
		if cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}
