package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/domain/mimetypes"
	"relay-bot/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

var _ contract.IUploader = (*Uploader)(nil)

// Uploader sends a local artifact to a chat as a single attachment.
//
// The artifact is read in fixed-size chunks while the messenger consumes it, and
// progress is keyed to the bytes read from disk. The file is sent once, never per chunk.
type Uploader struct {
	log       *slog.Logger
	messenger contract.Messenger
	mode      contract.IDeliveryMode
	chunkSize int
}

func NewUploader(log *slog.Logger, messenger contract.Messenger, mode contract.IDeliveryMode, chunkSize int) *Uploader {
	if chunkSize <= 0 {
		chunkSize = domain.UploadChunkSize
	}
	return &Uploader{
		log:       log,
		messenger: messenger,
		mode:      mode,
		chunkSize: chunkSize,
	}
}

// Upload always removes the artifact, whatever the outcome.
// A removal failure is logged only, it never turns a delivered file into a failed upload.
func (u *Uploader) Upload(ctx context.Context, chatID domain.ChatID, artifact domain.LocalArtifact,
	progress contract.ProgressReporter) error {
	defer func() {
		if rmErr := artifact.Remove(); rmErr != nil {
			u.log.Error("Unable to remove artifact", "transfer_id", artifact.TransferID, "path", artifact.Path, "error", rmErr)
		}
	}()
	if progress == nil {
		progress = NopProgress
	}

	// The mode is read once, a toggle during this upload applies to the next one
	asDocument := u.mode.IsDocument()
	presence := lo.Ternary(asDocument, domain.PresenceUploadDocument, domain.PresenceUploadVideo)
	if err := u.messenger.SendPresence(ctx, chatID, presence); err != nil {
		u.log.Debug("Unable to send presence", "chat_id", chatID, "error", err)
	}

	file, err := os.Open(artifact.Path)
	if err != nil {
		return errors.IO("open artifact", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.IO("stat artifact", err)
	}

	accountant := NewAccountant()
	accountant.Start(info.Size())

	reader := &chunkReader{
		r:         file,
		chunkSize: u.chunkSize,
		onChunk: func(n int) {
			accountant.Advance(n)
			progress.Report(accountant.Snapshot())
		},
	}
	attachment := domain.Attachment{Name: artifact.Name, Reader: reader}

	if asDocument {
		err = u.messenger.SendDocument(ctx, chatID, attachment)
	} else {
		kind, kindErr := mediaKind(file, artifact.MimeType)
		if kindErr != nil {
			return errors.IO("sniff artifact", kindErr)
		}
		err = u.messenger.SendMedia(ctx, chatID, kind, attachment)
	}
	if reader.err != nil {
		return errors.IO("read artifact", reader.err)
	}
	if err != nil {
		return errors.Delivery("send", err)
	}

	u.log.Info("Upload completed", "transfer_id", artifact.TransferID, "chat_id", chatID,
		"name", artifact.Name, "size", accountant.Transferred(), "as_document", asDocument)
	return nil
}

// mediaKind trusts a declared type unless it is missing or generic, and sniffs the file otherwise.
func mediaKind(file *os.File, declared string) (mimetypes.MediaKind, error) {
	if mt := mimetypes.ToMIME(declared); mt != mimetypes.Unknown {
		if _, generic := mimetypes.Matches(declared, mimetypes.OctetStream); !generic {
			return mimetypes.ToMediaKind(declared), nil
		}
	}
	return detectMediaKind(file)
}

// detectMediaKind sniffs the head of the file and rewinds it.
func detectMediaKind(file *os.File) (mimetypes.MediaKind, error) {
	head := make([]byte, 3072)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind: %w", err)
	}
	return mimetypes.ToMediaKind(mimetype.Detect(head[:n]).String()), nil
}

// chunkReader caps every read at chunkSize and reports each chunk consumed.
// Read errors are kept so they are not mistaken for delivery failures.
type chunkReader struct {
	r         io.Reader
	chunkSize int
	onChunk   func(n int)
	err       error
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.chunkSize {
		p = p[:c.chunkSize]
	}
	n, err := c.r.Read(p)
	if n > 0 {
		c.onChunk(n)
	}
	if err != nil && err != io.EOF {
		c.err = err
	}
	return n, err
}

// WriteTo lets io.Copy consume the artifact in full chunkSize reads instead of its own smaller buffer.
func (c *chunkReader) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, c.chunkSize)
	var written int64
	for {
		n, err := io.ReadFull(c.r, buf)
		if n > 0 {
			c.onChunk(n)
			m, wErr := w.Write(buf[:n])
			written += int64(m)
			if wErr != nil {
				return written, wErr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return written, nil
		}
		if err != nil {
			c.err = err
			return written, err
		}
	}
}
