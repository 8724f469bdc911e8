package domain

const KB = 1024
const MB = KB * KB

const (
	// DownloadChunkSize bounds each read of an HTTP response body.
	DownloadChunkSize = 1 * MB
	// UploadChunkSize bounds each read of a local artifact during upload.
	UploadChunkSize = 64 * KB
)

// DefaultFileName is used when neither the caller nor the URL provides a name.
const DefaultFileName = "downloaded_file"

// TransferRequest is a download-and-relay request coming from a chat.
type TransferRequest struct {
	ChatID ChatID `validate:"required"`
	Link   string `validate:"required,url,max=4096"`
	Name   string `validate:"omitempty,max=255"`
}

// RenameRequest asks for an attached chat file to be sent back under a new name.
type RenameRequest struct {
	ChatID  ChatID
	File    *RemoteFile
	NewName string
}

// RemoteFile references a file already stored by the delivery channel.
type RemoteFile struct {
	FileID   string
	FileName string
	MimeType string
	Size     int64
}
