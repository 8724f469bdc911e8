package workers

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/transfer"
)

// Ensure *UploadWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*UploadWorker)(nil)

// UploadWorker is one unit of the upload pool.
// It owns the artifact of every job it receives: the uploader removes it whatever the outcome.
type UploadWorker struct {
	log       *slog.Logger
	uploader  contract.IUploader
	messenger contract.Messenger
	throttle  transfer.Throttle
	jobs      <-chan domain.UploadJob
	reports   chan<- domain.Report
}

func NewUploadWorker(
	log *slog.Logger,
	uploader contract.IUploader,
	messenger contract.Messenger,
	throttle transfer.Throttle,
	jobs <-chan domain.UploadJob,
	reports chan<- domain.Report) *UploadWorker {
	return &UploadWorker{
		log:       log,
		uploader:  uploader,
		messenger: messenger,
		throttle:  throttle,
		jobs:      jobs,
		reports:   reports,
	}
}

func (w *UploadWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping upload worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Upload queue is closed")
				return nil
			}
			report := w.upload(ctx, job)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.reports <- report:
			}
		}
	}
}

func (w *UploadWorker) upload(ctx context.Context, job domain.UploadJob) domain.Report {
	var progress contract.ProgressReporter = transfer.NopProgress
	if job.ProgressMessage != 0 {
		progress = transfer.ResumeChatProgress(ctx, w.messenger, w.log, job.ChatID, job.ProgressMessage, "Uploading", w.throttle)
	}

	err := w.uploader.Upload(ctx, job.ChatID, job.Artifact, progress)
	if err != nil {
		w.log.Warn("Upload failed", "transfer_id", job.TransferID, "chat_id", job.ChatID, "error", err)
	}
	return domain.Report{
		TransferID: job.TransferID,
		ChatID:     job.ChatID,
		Name:       job.Artifact.Name,
		Err:        err,
	}
}
