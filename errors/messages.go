package errors

const (
	MsgDownloadFailed    = "Error occurred while downloading the file."
	MsgUploadFailed      = "Error occurred while uploading the file."
	MsgRenameFailed      = "Error occurred while renaming or uploading the file."
	MsgMissingLink       = "Please provide a direct download link."
	MsgInvalidLink       = "Please provide a valid http(s) download link."
	MsgMissingAttachment = "Please attach a file to rename."
	MsgMissingName       = "Please provide a new file name."
	MsgInsufficientSpace = "Not enough disk space to download this file."
	MsgQueueFull         = "The bot is busy, please try again later."
)

var userMessages = []struct {
	target error
	msg    string
}{
	{ErrMissingLink, MsgMissingLink},
	{ErrInvalidLink, MsgInvalidLink},
	{ErrMissingAttachment, MsgMissingAttachment},
	{ErrMissingName, MsgMissingName},
	{ErrInsufficientSpace, MsgInsufficientSpace},
	{ErrQueueFull, MsgQueueFull},
}

// UserMessage maps an error to the text shown in the chat.
// Errors without a dedicated message use the phase fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if Is(err, m.target) {
			return m.msg
		}
	}
	return fallback
}
