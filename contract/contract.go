//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"io"
	"reflect"
	"relay-bot/domain"
	"relay-bot/domain/mimetypes"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Messenger is the delivery channel boundary.
// Every call is a single attempt and may fail with a transport error.
type Messenger interface {
	SendText(ctx context.Context, chatID domain.ChatID, text string) (domain.MessageID, error)
	SendPreformatted(ctx context.Context, chatID domain.ChatID, text string) error
	EditText(ctx context.Context, chatID domain.ChatID, messageID domain.MessageID, text string) error
	SendPresence(ctx context.Context, chatID domain.ChatID, presence domain.Presence) error
	SendDocument(ctx context.Context, chatID domain.ChatID, file domain.Attachment) error
	SendMedia(ctx context.Context, chatID domain.ChatID, kind mimetypes.MediaKind, file domain.Attachment) error
	FetchFile(ctx context.Context, fileID string, dst io.Writer) error
}

type IDeliveryMode interface {
	IsDocument() bool
	Toggle() bool
}

type ProgressReporter interface {
	Report(p domain.Progress)
}

type IDiskProbe interface {
	EnsureFree(dir string, need int64) error
}

type IDownloader interface {
	Download(ctx context.Context, id domain.TransferID, link, name string, progress ProgressReporter) (*domain.LocalArtifact, error)
}

type IUploader interface {
	Upload(ctx context.Context, chatID domain.ChatID, artifact domain.LocalArtifact, progress ProgressReporter) error
}

type IUploadDispatcher interface {
	Submit(ctx context.Context, job domain.UploadJob) error
}

type IOrchestrator interface {
	Run(ctx context.Context, req domain.TransferRequest) error
}

type IRenamer interface {
	Rename(ctx context.Context, req domain.RenameRequest) error
}

// ICommandService answers chat commands. It never fails: errors become chat messages.
type ICommandService interface {
	Handle(ctx context.Context, cmd domain.Command)
}

type ITransferRepository interface {
	Save(record domain.TransferRecord) error
	UpdatePhase(id domain.TransferID, phase domain.Phase) error
	Get(id domain.TransferID) (domain.TransferRecord, error)
	ListByChat(chatID domain.ChatID) ([]domain.TransferRecord, error)
	ActiveIDs() (map[domain.TransferID]struct{}, error)
}
