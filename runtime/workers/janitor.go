package workers

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/storage"
	"time"
)

var _ contract.Worker = (*JanitorWorker)(nil)

// JanitorWorker removes transfer directories nobody owns anymore.
type JanitorWorker struct {
	log        *slog.Logger
	workDir    *storage.WorkDir
	repository contract.ITransferRepository
	interval   time.Duration
	maxAge     time.Duration
	now        func() time.Time
}

func NewJanitorWorker(log *slog.Logger, workDir *storage.WorkDir, repository contract.ITransferRepository,
	interval, maxAge time.Duration) *JanitorWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &JanitorWorker{
		log:        log,
		workDir:    workDir,
		repository: repository,
		interval:   interval,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// Purge wipes the whole work directory. Nothing survives a restart of the bot,
// so it must run before the first transfer starts.
func (w *JanitorWorker) Purge() error {
	n, err := w.workDir.PurgeAll()
	if err != nil {
		return err
	}
	w.log.Info("Work directory purged", "root", w.workDir.Root(), "removed", n)
	return nil
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.Sweep(); err != nil {
				w.log.Warn("Janitor sweep failed", "error", err)
			}
		}
	}
}

// Sweep removes directories older than maxAge without an active transfer record.
func (w *JanitorWorker) Sweep() (int, error) {
	entries, err := w.workDir.Entries()
	if err != nil {
		return 0, err
	}
	active, err := w.repository.ActiveIDs()
	if err != nil {
		return 0, err
	}

	removed := 0
	now := w.now()
	for _, entry := range entries {
		if _, ok := active[entry.ID]; ok {
			continue
		}
		if now.Sub(entry.ModifiedAt) < w.maxAge {
			continue
		}
		if err := w.workDir.Purge(entry.ID); err != nil {
			w.log.Warn("Unable to remove orphan artifact", "transfer_id", entry.ID, "error", err)
			continue
		}
		w.log.Debug("Orphan artifact removed", "transfer_id", entry.ID)
		removed++
	}
	return removed, nil
}
