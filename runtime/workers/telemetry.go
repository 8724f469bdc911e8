package workers

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/observability"
	"time"

	"github.com/dustin/go-humanize"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

type collector interface {
	Collect() (observability.Snapshot, error)
}

// TelemetryWorker logs a process snapshot every metricInterval.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	monitor        collector
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration, monitor collector) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		monitor:        monitor,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.logSnapshot()
		}
	}
}

func (w *TelemetryWorker) logSnapshot() {
	s, err := w.monitor.Collect()
	if err != nil {
		w.log.Debug("Unable to collect process metrics", "error", err)
		return
	}
	w.log.Info("Process metrics",
		"rss", humanize.Bytes(s.RSS),
		"cpu_percent", s.CPUPercent,
		"goroutines", s.Goroutines,
		"num_gc", s.NumGC,
		"disk_free", humanize.Bytes(s.DiskFree),
		"upload_queue", s.QueueDepth,
	)
}
