package observability

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/process"
)

// Snapshot is the process state logged by the metrics worker.
type Snapshot struct {
	RSS        uint64
	CPUPercent float64
	Goroutines int
	NumGC      uint32
	DiskFree   uint64
	QueueDepth int
}

// Monitor samples the bot process and its work volume.
type Monitor struct {
	proc       *process.Process
	workDir    string
	queueDepth func() int
}

func NewMonitor(workDir string, queueDepth func() int) (*Monitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("inspect own process: %w", err)
	}
	if queueDepth == nil {
		queueDepth = func() int { return 0 }
	}
	return &Monitor{proc: p, workDir: workDir, queueDepth: queueDepth}, nil
}

func (m *Monitor) Collect() (Snapshot, error) {
	memInfo, err := m.proc.MemoryInfo()
	if err != nil {
		return Snapshot{}, err
	}
	cpu, err := m.proc.CPUPercent()
	if err != nil {
		return Snapshot{}, err
	}
	usage, err := disk.Usage(m.workDir)
	if err != nil {
		return Snapshot{}, err
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Snapshot{
		RSS:        memInfo.RSS,
		CPUPercent: cpu,
		Goroutines: runtime.NumGoroutine(),
		NumGC:      ms.NumGC,
		DiskFree:   usage.Free,
		QueueDepth: m.queueDepth(),
	}, nil
}
