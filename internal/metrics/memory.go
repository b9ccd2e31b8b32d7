// Package metrics reads Go runtime memory statistics for the verbose
// post-run summary.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Delta returns the growth between two snapshots taken around a run.
// Cumulative counters subtract; point-in-time gauges report the end value.
func Delta(start, end MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    end.HeapAlloc,
		TotalAlloc:   end.TotalAlloc - start.TotalAlloc,
		Sys:          end.Sys,
		NumGC:        end.NumGC - start.NumGC,
		PauseTotalNs: end.PauseTotalNs - start.PauseTotalNs,
	}
}
