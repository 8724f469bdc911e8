// Package runtime wires the transfer pipeline: synchronous download, bounded upload pool,
// outcome reporting and housekeeping workers under one supervisor.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/errors"
	"relay-bot/observability"
	"relay-bot/runtime/workers"
	"relay-bot/storage"
	"relay-bot/transfer"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	_ contract.IOrchestrator     = (*Orchestrator)(nil)
	_ contract.IUploadDispatcher = (*Orchestrator)(nil)
)

// Settings groups the tunables of the pipeline.
type Settings struct {
	NumberOfUploadWorkers int
	UploadQueueSize       int
	SubmitTimeout         time.Duration
	Throttle              transfer.Throttle
	JanitorInterval       time.Duration
	ArtifactMaxAge        time.Duration
	MetricInterval        time.Duration
}

type Orchestrator struct {
	mu         sync.RWMutex
	closed     bool
	log        *slog.Logger
	supervisor contract.ISupervisor
	messenger  contract.Messenger
	downloader contract.IDownloader
	uploader   contract.IUploader
	repository contract.ITransferRepository
	workDir    *storage.WorkDir
	settings   Settings
	janitor    *workers.JanitorWorker
	validate   *validator.Validate
	jobs       chan domain.UploadJob
	reports    chan domain.Report
	newID      func() domain.TransferID
	now        func() time.Time
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, messenger contract.Messenger,
	downloader contract.IDownloader, uploader contract.IUploader, repository contract.ITransferRepository,
	workDir *storage.WorkDir, settings Settings) *Orchestrator {
	settings.NumberOfUploadWorkers = lo.Ternary(settings.NumberOfUploadWorkers > 0, settings.NumberOfUploadWorkers, 1)
	settings.UploadQueueSize = lo.Ternary(settings.UploadQueueSize >= 0, settings.UploadQueueSize, 0)
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		messenger:  messenger,
		downloader: downloader,
		uploader:   uploader,
		repository: repository,
		workDir:    workDir,
		settings:   settings,
		janitor:    workers.NewJanitorWorker(log, workDir, repository, settings.JanitorInterval, settings.ArtifactMaxAge),
		validate:   validator.New(),
		jobs:       make(chan domain.UploadJob, settings.UploadQueueSize),
		reports:    make(chan domain.Report, settings.UploadQueueSize+settings.NumberOfUploadWorkers),
		newID:      domain.NewTransferID,
		now:        time.Now,
	}
}

// Prepare clears the artifacts left by a previous process. It must be called before
// the bot accepts commands.
func (o *Orchestrator) Prepare() error {
	return o.janitor.Purge()
}

// Start registers the pipeline workers and blocks until the supervisor stops.
// Jobs still queued at that point are discarded along with their artifacts,
// and later submissions are rejected.
func (o *Orchestrator) Start(ctx context.Context) error {
	pool := o.preparePoolWorkers()

	for _, w := range pool {
		o.supervisor.Add(w)
	}
	o.supervisor.Add(workers.NewReporterWorker(o.log, o.messenger, o.repository, o.reports))
	o.supervisor.Add(o.janitor)
	if telemetry := o.prepareTelemetry(); telemetry != nil {
		o.supervisor.Add(telemetry)
	}

	o.log.Info("Starting orchestrator and all supervised workers",
		"upload_workers", o.settings.NumberOfUploadWorkers, "queue_size", o.settings.UploadQueueSize)
	o.supervisor.Run(ctx)
	o.drain()
	return nil
}

func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.settings.NumberOfUploadWorkers; i++ {
		res = append(res, workers.NewUploadWorker(o.log, o.uploader, o.messenger, o.settings.Throttle, o.jobs, o.reports))
	}
	return res
}

func (o *Orchestrator) prepareTelemetry() contract.Worker {
	if o.settings.MetricInterval <= 0 {
		return nil
	}
	monitor, err := observability.NewMonitor(o.workDir.Root(), o.QueueDepth)
	if err != nil {
		o.log.Warn("Telemetry disabled", "error", err)
		return nil
	}
	return workers.NewTelemetryWorker(o.log, o.settings.MetricInterval, monitor)
}

// Run downloads the link on the caller's goroutine and queues the upload.
// It returns once the upload is queued; the outcome is reported to the chat by the reporter.
func (o *Orchestrator) Run(ctx context.Context, req domain.TransferRequest) error {
	req.Link = strings.TrimSpace(req.Link)
	if req.Link == "" {
		return errors.Usage("download", errors.ErrMissingLink)
	}
	if err := o.validateRequest(req); err != nil {
		return errors.Link("download", err)
	}

	id := o.newID()
	log := o.log.With("transfer_id", id, "chat_id", req.ChatID)
	o.presence(ctx, req.ChatID, domain.PresenceTyping)
	chat := transfer.StartChatProgress(ctx, o.messenger, o.log, req.ChatID, "Downloading", o.settings.Throttle)

	startedAt := o.now()
	o.save(domain.TransferRecord{
		ID:        id,
		ChatID:    req.ChatID,
		Name:      req.Name,
		Phase:     domain.PhaseDownloading,
		StartedAt: startedAt,
		UpdatedAt: startedAt,
	})

	var last domain.Progress
	artifact, err := o.downloader.Download(ctx, id, req.Link, req.Name, transfer.ProgressFunc(func(p domain.Progress) {
		last = p
		chat.Report(p)
	}))
	if err != nil {
		log.Warn("Download failed", "link", req.Link, "error", err)
		o.updatePhase(id, domain.PhaseFailed)
		return err
	}

	o.save(domain.TransferRecord{
		ID:        id,
		ChatID:    req.ChatID,
		Name:      artifact.Name,
		Phase:     domain.PhaseUploading,
		Bytes:     last.Transferred,
		Total:     last.Total,
		StartedAt: startedAt,
		UpdatedAt: o.now(),
	})

	uploading := transfer.StartChatProgress(ctx, o.messenger, o.log, req.ChatID, "Uploading", o.settings.Throttle)
	err = o.Submit(ctx, domain.UploadJob{
		TransferID:      id,
		ChatID:          req.ChatID,
		Artifact:        *artifact,
		ProgressMessage: uploading.MessageID(),
	})
	if err != nil {
		log.Warn("Upload not queued", "error", err)
		o.updatePhase(id, domain.PhaseFailed)
		return err
	}
	return nil
}

func (o *Orchestrator) validateRequest(req domain.TransferRequest) error {
	if err := o.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidLink, err)
	}
	u, err := url.Parse(req.Link)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidLink, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", errors.ErrInvalidLink, u.Scheme)
	}
	return nil
}

// Submit hands a job to the upload pool, waiting at most SubmitTimeout for room in the queue.
// The artifact is removed when the job is not accepted. Once the pool has stopped every job is rejected.
func (o *Orchestrator) Submit(ctx context.Context, job domain.UploadJob) error {
	// Held for the whole send so drain never runs while a job is entering the queue
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		return o.reject(job, errors.ErrQueueFull)
	}
	if err := ctx.Err(); err != nil {
		return o.reject(job, fmt.Errorf("%w: %v", errors.ErrQueueFull, err))
	}

	if o.settings.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.settings.SubmitTimeout)
		defer cancel()
	}
	select {
	case o.jobs <- job:
		return nil
	case <-ctx.Done():
		return o.reject(job, fmt.Errorf("%w: %v", errors.ErrQueueFull, ctx.Err()))
	}
}

func (o *Orchestrator) reject(job domain.UploadJob, cause error) error {
	if err := job.Artifact.Remove(); err != nil {
		o.log.Error("Unable to remove rejected artifact", "transfer_id", job.TransferID, "error", err)
	}
	return errors.Delivery("submit upload", cause)
}

// QueueDepth is the number of uploads waiting for a worker.
func (o *Orchestrator) QueueDepth() int {
	return len(o.jobs)
}

// Stop cancels the supervised workers. Start returns once they are done.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

func (o *Orchestrator) drain() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()

	for {
		select {
		case job := <-o.jobs:
			if err := job.Artifact.Remove(); err != nil {
				o.log.Error("Unable to remove queued artifact", "transfer_id", job.TransferID, "error", err)
			}
			o.updatePhase(job.TransferID, domain.PhaseFailed)
		default:
			return
		}
	}
}

func (o *Orchestrator) presence(ctx context.Context, chatID domain.ChatID, presence domain.Presence) {
	if err := o.messenger.SendPresence(ctx, chatID, presence); err != nil {
		o.log.Debug("Unable to send presence", "chat_id", chatID, "error", err)
	}
}

func (o *Orchestrator) save(record domain.TransferRecord) {
	if err := o.repository.Save(record); err != nil {
		o.log.Warn("Unable to save transfer record", "transfer_id", record.ID, "error", err)
	}
}

func (o *Orchestrator) updatePhase(id domain.TransferID, phase domain.Phase) {
	if err := o.repository.UpdatePhase(id, phase); err != nil {
		o.log.Warn("Unable to update transfer record", "transfer_id", id, "error", err)
	}
}
