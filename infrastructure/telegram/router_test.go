package telegram

import (
	"context"
	"log/slog"
	"relay-bot/domain"
	"relay-bot/mocks"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		msg     models.Message
		want    domain.Command
		command bool
	}{
		{
			name:    "Plain command",
			msg:     models.Message{Chat: models.Chat{ID: 3}, Text: "/start"},
			want:    domain.Command{Name: domain.CommandStart, ChatID: 3, Args: []string{}},
			command: true,
		},
		{
			name: "Arguments and bot suffix",
			msg:  models.Message{Chat: models.Chat{ID: 3}, Text: "/download@relay_bot https://example.com/a.zip  my file"},
			want: domain.Command{Name: domain.CommandDownload, ChatID: 3,
				Args: []string{"https://example.com/a.zip", "my", "file"}},
			command: true,
		},
		{
			name: "Caption of a document",
			msg: models.Message{
				Chat:     models.Chat{ID: -100},
				Caption:  "/rename summary",
				Document: &models.Document{FileID: "f1", FileName: "report.pdf", MimeType: "application/pdf", FileSize: 12},
			},
			want: domain.Command{Name: domain.CommandRename, ChatID: -100, Args: []string{"summary"},
				Document: &domain.RemoteFile{FileID: "f1", FileName: "report.pdf", MimeType: "application/pdf", Size: 12}},
			command: true,
		},
		{
			name:    "Unknown command",
			msg:     models.Message{Chat: models.Chat{ID: 3}, Text: "/Dance now"},
			want:    domain.Command{Name: domain.CommandUnknown, ChatID: 3, Args: []string{"now"}},
			command: true,
		},
		{
			name: "Not a command",
			msg:  models.Message{Chat: models.Chat{ID: 3}, Text: "hello /start"},
		},
		{
			name: "Empty message",
			msg:  models.Message{Chat: models.Chat{ID: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, ok := ParseCommand(&tt.msg)
			req.Equal(tt.command, ok)
			if ok {
				req.Equal(tt.want, got)
			}
		})
	}
}

func TestRouter_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commands := mocks.NewMockICommandService(ctrl)
	commands.EXPECT().Handle(gomock.Any(), domain.Command{Name: domain.CommandHelp, ChatID: 9, Args: []string{}}).Times(1)

	router := NewRouter(slog.Default(), commands)
	router.Handle(context.Background(), nil, &models.Update{Message: &models.Message{Chat: models.Chat{ID: 9}, Text: "/help"}})
	router.Handle(context.Background(), nil, &models.Update{Message: &models.Message{Chat: models.Chat{ID: 9}, Text: "thanks"}})
	router.Handle(context.Background(), nil, &models.Update{})
}
