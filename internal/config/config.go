package config

import (
	"runtime"
	"sync"
)

const maxWorkers = 256

// RuntimeSettings holds process-wide knobs shared by the generation and
// meshing drivers.
type RuntimeSettings struct {
	mu      sync.RWMutex
	workers int
}

var globalRuntimeSettings = &RuntimeSettings{
	workers: defaultWorkers(),
}

func defaultWorkers() int {
	return clampWorkers(runtime.NumCPU())
}

func clampWorkers(n int) int {
	if n < 1 {
		n = 1
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	return n
}

// GetWorkers returns the number of goroutines a driver should use when the
// caller did not ask for a specific count.
func GetWorkers() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.workers
}

// SetWorkers sets the default worker count. Values are clamped to
// [1, 256]; n <= 0 restores the CPU-count default.
func SetWorkers(n int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	if n <= 0 {
		globalRuntimeSettings.workers = defaultWorkers()
		return
	}
	globalRuntimeSettings.workers = clampWorkers(n)
}

// ResolveWorkers returns n when positive, otherwise GetWorkers().
func ResolveWorkers(n int) int {
	if n > 0 {
		return clampWorkers(n)
	}
	return GetWorkers()
}
