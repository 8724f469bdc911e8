package workers

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/errors"
)

var _ contract.Worker = (*ReporterWorker)(nil)

// ReporterWorker finalizes transfers once their upload is over.
// A successful upload needs no message, the file itself is the answer.
type ReporterWorker struct {
	log        *slog.Logger
	messenger  contract.Messenger
	repository contract.ITransferRepository
	reports    <-chan domain.Report
}

func NewReporterWorker(log *slog.Logger, messenger contract.Messenger,
	repository contract.ITransferRepository, reports <-chan domain.Report) *ReporterWorker {
	return &ReporterWorker{
		log:        log,
		messenger:  messenger,
		repository: repository,
		reports:    reports,
	}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report, ok := <-w.reports:
			if !ok {
				return nil
			}
			w.handle(ctx, report)
		}
	}
}

func (w *ReporterWorker) handle(ctx context.Context, report domain.Report) {
	phase := domain.PhaseCompleted
	if report.Err != nil {
		phase = domain.PhaseFailed
		text := errors.UserMessage(report.Err, errors.MsgUploadFailed)
		if _, err := w.messenger.SendText(ctx, report.ChatID, text); err != nil {
			w.log.Error("Unable to report upload failure", "chat_id", report.ChatID, "error", err)
		}
	}
	if err := w.repository.UpdatePhase(report.TransferID, phase); err != nil {
		w.log.Warn("Unable to update transfer record", "transfer_id", report.TransferID, "error", err)
	}
}
