// Package metrics collects process and system health metrics.
// The rest of the service treats the collector as an external data source
// returning a point-in-time snapshot.
package metrics

import (
	"runtime"
	"time"
)

// ProcessMetrics describes the running process.
type ProcessMetrics struct {
	UptimeSeconds  float64 `json:"uptimeSeconds"`
	Goroutines     int     `json:"goroutines"`
	HeapAllocBytes uint64  `json:"heapAllocBytes"`
	HeapSysBytes   uint64  `json:"heapSysBytes"`
	GCRuns         uint32  `json:"gcRuns"`
}

// SystemMetrics describes the host environment.
type SystemMetrics struct {
	CPUs      int    `json:"cpus"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	GoVersion string `json:"goVersion"`
}

// Snapshot is a point-in-time view of process and system health.
type Snapshot struct {
	Process ProcessMetrics `json:"process"`
	System  SystemMetrics  `json:"system"`
}

// runtimeCollector samples metrics from the Go runtime.
type runtimeCollector struct {
	start time.Time
}

// NewRuntimeCollector creates a collector whose uptime starts now.
func NewRuntimeCollector() *runtimeCollector {
	return &runtimeCollector{start: time.Now()}
}

// StartTime returns when the collector (and therefore the server) started.
func (c *runtimeCollector) StartTime() time.Time { return c.start }

// Snapshot samples the current process and system metrics.
func (c *runtimeCollector) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Snapshot{
		Process: ProcessMetrics{
			UptimeSeconds:  time.Since(c.start).Seconds(),
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			HeapSysBytes:   mem.HeapSys,
			GCRuns:         mem.NumGC,
		},
		System: SystemMetrics{
			CPUs:      runtime.NumCPU(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
		},
	}
}
