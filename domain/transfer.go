package domain

import (
	"os"
	"time"

	"github.com/google/uuid"
)

type ChatID int64

type TransferID string

// NewTransferID returns a random identifier used to namespace local artifacts.
func NewTransferID() TransferID {
	return TransferID(uuid.NewString())
}

// LocalArtifact is a file materialized under a per-transfer directory.
// Removing the artifact removes the whole directory.
// MimeType is the type declared by the source, empty when unknown.
type LocalArtifact struct {
	TransferID TransferID
	Dir        string
	Path       string
	Name       string
	MimeType   string
}

// Remove deletes the artifact directory. A missing directory is not an error.
func (a LocalArtifact) Remove() error {
	if a.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(a.Dir); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UploadJob is handed to the upload pool once the download succeeded.
// ProgressMessage is the chat message that upload progress edits, zero if none.
type UploadJob struct {
	TransferID      TransferID
	ChatID          ChatID
	Artifact        LocalArtifact
	ProgressMessage MessageID
}

// Report carries the outcome of an upload back to the originating chat.
type Report struct {
	TransferID TransferID
	ChatID     ChatID
	Name       string
	Err        error
}

// Progress is a point-in-time view of a single transfer.
type Progress struct {
	Transferred int64
	Total       int64
	Percentage  float64
	Throughput  float64 // bytes per second
	Elapsed     time.Duration
}

// Known reports whether the total size of the transfer is known.
func (p Progress) Known() bool {
	return p.Total > 0
}

type Phase string

const (
	PhaseDownloading Phase = "downloading"
	PhaseUploading   Phase = "uploading"
	PhaseCompleted   Phase = "completed"
	PhaseFailed      Phase = "failed"
)

func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// TransferRecord tracks a transfer for status reporting. Records are kept in memory only.
type TransferRecord struct {
	ID        TransferID `json:"id"`
	ChatID    ChatID     `json:"chat_id"`
	Name      string     `json:"name"`
	Phase     Phase      `json:"phase"`
	Bytes     int64      `json:"bytes"`
	Total     int64      `json:"total"`
	StartedAt time.Time  `json:"started_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
