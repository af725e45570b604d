package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight CPU time accumulator for generation and meshing passes.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("meshing.BuildChunkMesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears all accumulated totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix sums every total whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, largest first.
// Example: "world.PopulateRegion:41.2ms, meshing.BuildChunkMesh:12.5ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = max(0, min(n, len(list)))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
