// Package telegram adapts the Bot API to the relay pipeline.
package telegram

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/domain/mimetypes"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var _ contract.Messenger = (*Messenger)(nil)

// api is the subset of *bot.Bot used by the messenger.
type api interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendAudio(ctx context.Context, params *bot.SendAudioParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

type Messenger struct {
	api    api
	client *http.Client
	log    *slog.Logger
}

func NewMessenger(b *bot.Bot, client *http.Client, log *slog.Logger) *Messenger {
	return newMessenger(b, client, log)
}

func newMessenger(api api, client *http.Client, log *slog.Logger) *Messenger {
	return &Messenger{api: api, client: client, log: log}
}

func (m *Messenger) SendText(ctx context.Context, chatID domain.ChatID, text string) (domain.MessageID, error) {
	msg, err := m.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: int64(chatID),
		Text:   text,
	})
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return domain.MessageID(msg.ID), nil
}

// SendPreformatted sends text in a monospace block.
func (m *Messenger) SendPreformatted(ctx context.Context, chatID domain.ChatID, text string) error {
	_, err := m.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    int64(chatID),
		Text:      "<pre>" + html.EscapeString(text) + "</pre>",
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send preformatted message: %w", err)
	}
	return nil
}

func (m *Messenger) EditText(ctx context.Context, chatID domain.ChatID, messageID domain.MessageID, text string) error {
	_, err := m.api.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    int64(chatID),
		MessageID: int(messageID),
		Text:      text,
	})
	if err != nil {
		return fmt.Errorf("edit message %d: %w", messageID, err)
	}
	return nil
}

func (m *Messenger) SendPresence(ctx context.Context, chatID domain.ChatID, presence domain.Presence) error {
	_, err := m.api.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: int64(chatID),
		Action: toChatAction(presence),
	})
	return err
}

func toChatAction(presence domain.Presence) models.ChatAction {
	switch presence {
	case domain.PresenceUploadDocument:
		return models.ChatActionUploadDocument
	case domain.PresenceUploadVideo:
		return models.ChatActionUploadVideo
	default:
		return models.ChatActionTyping
	}
}

func (m *Messenger) SendDocument(ctx context.Context, chatID domain.ChatID, file domain.Attachment) error {
	_, err := m.api.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   int64(chatID),
		Document: toInputFile(file),
	})
	if err != nil {
		return fmt.Errorf("send document %s: %w", file.Name, err)
	}
	return nil
}

// SendMedia sends the file inline. Anything that is neither a photo nor audio goes out as streaming video.
func (m *Messenger) SendMedia(ctx context.Context, chatID domain.ChatID, kind mimetypes.MediaKind, file domain.Attachment) error {
	var err error
	switch kind {
	case mimetypes.MediaPhoto:
		_, err = m.api.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: int64(chatID),
			Photo:  toInputFile(file),
		})
	case mimetypes.MediaAudio:
		_, err = m.api.SendAudio(ctx, &bot.SendAudioParams{
			ChatID: int64(chatID),
			Audio:  toInputFile(file),
		})
	default:
		_, err = m.api.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:            int64(chatID),
			Video:             toInputFile(file),
			SupportsStreaming: true,
		})
	}
	if err != nil {
		return fmt.Errorf("send %s %s: %w", kind, file.Name, err)
	}
	return nil
}

func toInputFile(file domain.Attachment) models.InputFile {
	return &models.InputFileUpload{Filename: file.Name, Data: file.Reader}
}

// FetchFile streams a file stored by Telegram into dst.
func (m *Messenger) FetchFile(ctx context.Context, fileID string, dst io.Writer) error {
	file, err := m.api.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return fmt.Errorf("get file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.api.FileDownloadLink(file), nil)
	if err != nil {
		return err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			m.log.Debug("Unable to close file body", "file_id", fileID, "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download file %s: status %d", fileID, resp.StatusCode)
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("copy file %s: %w", fileID, err)
	}
	return nil
}
