package telegram

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var knownCommands = map[string]domain.CommandName{
	"start":    domain.CommandStart,
	"toggle":   domain.CommandToggle,
	"help":     domain.CommandHelp,
	"download": domain.CommandDownload,
	"rename":   domain.CommandRename,
	"status":   domain.CommandStatus,
}

// Router turns Telegram updates into commands for the command service.
type Router struct {
	log      *slog.Logger
	commands contract.ICommandService
}

func NewRouter(log *slog.Logger, commands contract.ICommandService) *Router {
	return &Router{log: log, commands: commands}
}

// Handle has the bot.HandlerFunc signature and is registered as the default handler.
func (r *Router) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	cmd, ok := ParseCommand(update.Message)
	if !ok {
		return
	}
	r.log.Debug("Command received", "chat_id", cmd.ChatID, "command", cmd.Name, "args", len(cmd.Args))
	r.commands.Handle(ctx, cmd)
}

// ParseCommand reads "/name[@bot] args..." from the text, or from the caption of a file message.
// Messages that are not commands are ignored.
func ParseCommand(msg *models.Message) (domain.Command, bool) {
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return domain.Command{}, false
	}

	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	cmd := domain.Command{
		Name:   domain.CommandUnknown,
		ChatID: domain.ChatID(msg.Chat.ID),
		Args:   fields[1:],
	}
	if known, ok := knownCommands[strings.ToLower(name)]; ok {
		cmd.Name = known
	}
	if doc := msg.Document; doc != nil {
		cmd.Document = &domain.RemoteFile{
			FileID:   doc.FileID,
			FileName: doc.FileName,
			MimeType: doc.MimeType,
			Size:     doc.FileSize,
		}
	}
	return cmd, true
}
