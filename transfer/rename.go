package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/errors"
	"relay-bot/storage"
	"strings"
	"time"

	"github.com/samber/lo"
)

var _ contract.IRenamer = (*Renamer)(nil)

// Renamer sends an attached chat file back under a new name.
type Renamer struct {
	log        *slog.Logger
	messenger  contract.Messenger
	workDir    *storage.WorkDir
	probe      contract.IDiskProbe
	uploader   contract.IUploader
	repository contract.ITransferRepository
	throttle   Throttle
	newID      func() domain.TransferID
	now        func() time.Time
}

func NewRenamer(log *slog.Logger, messenger contract.Messenger, workDir *storage.WorkDir, probe contract.IDiskProbe,
	uploader contract.IUploader, repository contract.ITransferRepository, throttle Throttle) *Renamer {
	return &Renamer{
		log:        log,
		messenger:  messenger,
		workDir:    workDir,
		probe:      probe,
		uploader:   uploader,
		repository: repository,
		throttle:   throttle,
		newID:      domain.NewTransferID,
		now:        time.Now,
	}
}

// Rename fetches the attachment, renames it and uploads it synchronously.
// The transfer directory is gone when Rename returns.
func (r *Renamer) Rename(ctx context.Context, req domain.RenameRequest) error {
	if req.File == nil || req.File.FileID == "" {
		return errors.Usage("rename", errors.ErrMissingAttachment)
	}
	newName := strings.TrimSpace(req.NewName)
	if newName == "" {
		return errors.Usage("rename", errors.ErrMissingName)
	}

	if err := r.messenger.SendPresence(ctx, req.ChatID, domain.PresenceTyping); err != nil {
		r.log.Debug("Unable to send presence", "chat_id", req.ChatID, "error", err)
	}

	id := r.newID()
	record := domain.TransferRecord{
		ID:        id,
		ChatID:    req.ChatID,
		Name:      FinalName(newName, req.File.FileName),
		Phase:     domain.PhaseDownloading,
		Total:     req.File.Size,
		StartedAt: r.now(),
	}
	record.UpdatedAt = record.StartedAt
	r.save(record)

	err := r.rename(ctx, id, req, newName, &record)
	phase := lo.Ternary(err == nil, domain.PhaseCompleted, domain.PhaseFailed)
	if updErr := r.repository.UpdatePhase(id, phase); updErr != nil {
		r.log.Warn("Unable to update transfer record", "transfer_id", id, "error", updErr)
	}
	return err
}

func (r *Renamer) rename(ctx context.Context, id domain.TransferID, req domain.RenameRequest, newName string,
	record *domain.TransferRecord) error {
	if req.File.Size > 0 && r.probe != nil {
		if err := r.probe.EnsureFree(r.workDir.Root(), req.File.Size); err != nil {
			return errors.IO("check free space", err)
		}
	}

	artifact, err := r.workDir.Allocate(id, req.File.FileName)
	if err != nil {
		return errors.IO("allocate artifact", err)
	}
	artifact.MimeType = req.File.MimeType

	size, err := r.fetch(ctx, req.File, artifact)
	if err != nil {
		if rmErr := artifact.Remove(); rmErr != nil {
			r.log.Error("Unable to remove fetched artifact", "transfer_id", id, "error", rmErr)
		}
		return err
	}

	renamed, err := r.workDir.Rename(artifact, FinalName(newName, artifact.Name))
	if err != nil {
		if rmErr := artifact.Remove(); rmErr != nil {
			r.log.Error("Unable to remove fetched artifact", "transfer_id", id, "error", rmErr)
		}
		return errors.IO("rename artifact", err)
	}
	r.log.Info("File renamed", "transfer_id", id, "from", artifact.Name, "to", renamed.Name)

	record.Name = renamed.Name
	record.Phase = domain.PhaseUploading
	record.Bytes = size
	record.UpdatedAt = r.now()
	r.save(*record)

	progress := StartChatProgress(ctx, r.messenger, r.log, req.ChatID, "Uploading", r.throttle)
	return r.uploader.Upload(ctx, req.ChatID, renamed, progress)
}

// fetch writes the remote file into the artifact and checks it against the announced size.
func (r *Renamer) fetch(ctx context.Context, remote *domain.RemoteFile, artifact domain.LocalArtifact) (int64, error) {
	file, err := os.OpenFile(artifact.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, errors.IO("create artifact", err)
	}
	if err := r.messenger.FetchFile(ctx, remote.FileID, file); err != nil {
		_ = file.Close()
		return 0, errors.Delivery("fetch file", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return 0, errors.IO("stat artifact", err)
	}
	if err := file.Close(); err != nil {
		return 0, errors.IO("close artifact", err)
	}
	if remote.Size > 0 && info.Size() != remote.Size {
		return 0, errors.Delivery("fetch file", fmt.Errorf("short file: got %d of %d bytes", info.Size(), remote.Size))
	}
	return info.Size(), nil
}

func (r *Renamer) save(record domain.TransferRecord) {
	if err := r.repository.Save(record); err != nil {
		r.log.Warn("Unable to save transfer record", "transfer_id", record.ID, "error", err)
	}
}

// FinalName appends the original extension to the requested name.
// A requested name that already carries the same extension is kept as is.
func FinalName(newName, original string) string {
	base := storage.SanitizeName(newName)
	ext := filepath.Ext(original)
	if ext == "" || strings.EqualFold(filepath.Ext(base), ext) {
		return base
	}
	return base + ext
}
