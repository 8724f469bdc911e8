package domain

import "io"

type MessageID int

// Presence is the chat action shown to the user while the bot works.
type Presence string

const (
	PresenceTyping         Presence = "typing"
	PresenceUploadDocument Presence = "upload_document"
	PresenceUploadVideo    Presence = "upload_video"
)

// Attachment is a file sent to a chat in a single message.
type Attachment struct {
	Name   string
	Reader io.Reader
}
