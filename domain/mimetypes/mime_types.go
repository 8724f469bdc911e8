package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"
)

// MediaKind is the inline representation used when files are sent as media.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaPhoto MediaKind = "photo"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// ToMIME strips parameters from a detected type.
func ToMIME(detected string) MIME {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// ToMediaKind picks the inline representation for a detected type.
// Anything that is neither an image nor audio goes out as streamable video.
func ToMediaKind(detected string) MediaKind {
	mt := string(ToMIME(detected))
	switch {
	case strings.HasPrefix(mt, "image/") && mt != "image/svg+xml":
		return MediaPhoto
	case strings.HasPrefix(mt, "audio/"):
		return MediaAudio
	default:
		return MediaVideo
	}
}
