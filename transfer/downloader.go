package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/errors"
	"relay-bot/storage"
)

var _ contract.IDownloader = (*Downloader)(nil)

// Downloader streams an HTTP resource into a per-transfer artifact.
type Downloader struct {
	log       *slog.Logger
	client    *http.Client
	workDir   *storage.WorkDir
	probe     contract.IDiskProbe
	chunkSize int
}

func NewDownloader(log *slog.Logger, client *http.Client, workDir *storage.WorkDir,
	probe contract.IDiskProbe, chunkSize int) *Downloader {
	if chunkSize <= 0 {
		chunkSize = domain.DownloadChunkSize
	}
	return &Downloader{
		log:       log,
		client:    client,
		workDir:   workDir,
		probe:     probe,
		chunkSize: chunkSize,
	}
}

// Download fetches link and writes it under the transfer directory.
// On any failure the transfer directory is removed before returning.
func (d *Downloader) Download(ctx context.Context, id domain.TransferID, link, name string,
	progress contract.ProgressReporter) (*domain.LocalArtifact, error) {
	if progress == nil {
		progress = NopProgress
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, errors.Link("build request", fmt.Errorf("%w: %v", errors.ErrInvalidLink, err))
	}

	response, err := d.client.Do(request)
	if err != nil {
		return nil, errors.Link("get", err)
	}
	defer response.Body.Close()

	// Fail fast, the body of an error response is never read
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, errors.Link("get", fmt.Errorf("%w: %s", errors.ErrUnexpectedStatus, response.Status))
	}

	total := response.ContentLength
	if total > 0 && d.probe != nil {
		if err := d.probe.EnsureFree(d.workDir.Root(), total); err != nil {
			return nil, errors.IO("check free space", err)
		}
	}

	if name == "" {
		name = NameFromURL(response.Request.URL)
	}
	artifact, err := d.workDir.Allocate(id, name)
	if err != nil {
		return nil, errors.IO("allocate artifact", err)
	}

	if err := d.stream(response.Body, artifact, total, progress); err != nil {
		if rmErr := artifact.Remove(); rmErr != nil {
			d.log.Error("Unable to remove partial artifact", "transfer_id", id, "path", artifact.Path, "error", rmErr)
		}
		return nil, err
	}

	d.log.Info("Download completed", "transfer_id", id, "name", artifact.Name, "size", total)
	return &artifact, nil
}

func (d *Downloader) stream(body io.Reader, artifact domain.LocalArtifact, total int64,
	progress contract.ProgressReporter) error {
	file, err := os.OpenFile(artifact.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.IO("create artifact", err)
	}

	accountant := NewAccountant()
	accountant.Start(total)

	buf := make([]byte, d.chunkSize)
	for {
		n, readErr := io.ReadFull(body, buf)
		if n > 0 {
			if _, err := file.Write(buf[:n]); err != nil {
				_ = file.Close()
				return errors.IO("write chunk", err)
			}
			accountant.Advance(n)
			progress.Report(accountant.Snapshot())
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			_ = file.Close()
			return errors.Link("read body", readErr)
		}
	}

	if err := file.Close(); err != nil {
		return errors.IO("close artifact", err)
	}
	if total > 0 && accountant.Transferred() != total {
		return errors.Link("read body", fmt.Errorf("short body: got %d of %d bytes", accountant.Transferred(), total))
	}
	return nil
}

// NameFromURL derives a file name from the last element of the URL path.
// When the path has no usable element the default name keeps the path extension, if any.
func NameFromURL(u *url.URL) string {
	if u == nil {
		return domain.DefaultFileName
	}
	base := path.Base(u.Path)
	if base != "." && base != "/" {
		return storage.SanitizeName(base)
	}
	return domain.DefaultFileName + path.Ext(u.Path)
}
