package services

import (
	"context"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var _ contract.ICommandService = (*CommandService)(nil)

const (
	MsgWelcome        = "Welcome to the File Downloader Bot!"
	MsgUnknownCommand = "Unknown command. Use /help to see available commands."
	MsgNoTransfers    = "No transfers yet."
	MsgHelp           = `Available commands:
/start - Start the bot
/toggle - Toggle between sending files as documents or media
/download <link> [name] - Download a file and send it back
/rename <new name> - Send the attached file back under a new name
/status - Show your recent transfers
/help - Display help information`
)

// statusLimit bounds the number of rows shown by /status.
const statusLimit = 10

type CommandService struct {
	log          *slog.Logger
	messenger    contract.Messenger
	orchestrator contract.IOrchestrator
	renamer      contract.IRenamer
	mode         contract.IDeliveryMode
	repository   contract.ITransferRepository
}

func NewCommandService(log *slog.Logger, messenger contract.Messenger, orchestrator contract.IOrchestrator,
	renamer contract.IRenamer, mode contract.IDeliveryMode, repository contract.ITransferRepository) *CommandService {
	return &CommandService{
		log:          log,
		messenger:    messenger,
		orchestrator: orchestrator,
		renamer:      renamer,
		mode:         mode,
		repository:   repository,
	}
}

func (s *CommandService) Handle(ctx context.Context, cmd domain.Command) {
	switch cmd.Name {
	case domain.CommandStart:
		s.reply(ctx, cmd.ChatID, MsgWelcome)
	case domain.CommandToggle:
		s.reply(ctx, cmd.ChatID, "Send as "+Label(s.mode.Toggle()))
	case domain.CommandHelp:
		s.reply(ctx, cmd.ChatID, MsgHelp)
	case domain.CommandDownload:
		s.download(ctx, cmd)
	case domain.CommandRename:
		s.rename(ctx, cmd)
	case domain.CommandStatus:
		s.status(ctx, cmd.ChatID)
	default:
		s.reply(ctx, cmd.ChatID, MsgUnknownCommand)
	}
}

func (s *CommandService) download(ctx context.Context, cmd domain.Command) {
	req := domain.TransferRequest{ChatID: cmd.ChatID, Link: cmd.Arg(0)}
	if len(cmd.Args) > 1 {
		req.Name = strings.Join(cmd.Args[1:], " ")
	}
	if err := s.orchestrator.Run(ctx, req); err != nil {
		s.log.Info("Download rejected", "chat_id", cmd.ChatID, "kind", errors.KindOf(err), "error", err)
		s.reply(ctx, cmd.ChatID, errors.UserMessage(err, errors.MsgDownloadFailed))
	}
}

func (s *CommandService) rename(ctx context.Context, cmd domain.Command) {
	err := s.renamer.Rename(ctx, domain.RenameRequest{
		ChatID:  cmd.ChatID,
		File:    cmd.Document,
		NewName: strings.Join(cmd.Args, " "),
	})
	if err != nil {
		s.log.Info("Rename failed", "chat_id", cmd.ChatID, "kind", errors.KindOf(err), "error", err)
		s.reply(ctx, cmd.ChatID, errors.UserMessage(err, errors.MsgRenameFailed))
	}
}

func (s *CommandService) status(ctx context.Context, chatID domain.ChatID) {
	records, err := s.repository.ListByChat(chatID)
	if err != nil {
		s.log.Error("Unable to list transfers", "chat_id", chatID, "error", err)
	}
	if len(records) == 0 {
		s.reply(ctx, chatID, MsgNoTransfers)
		return
	}
	if err := s.messenger.SendPreformatted(ctx, chatID, RenderStatus(records)); err != nil {
		s.log.Error("Unable to send status", "chat_id", chatID, "error", err)
	}
}

func (s *CommandService) reply(ctx context.Context, chatID domain.ChatID, text string) {
	if _, err := s.messenger.SendText(ctx, chatID, text); err != nil {
		s.log.Error("Unable to reply", "chat_id", chatID, "error", err)
	}
}

// RenderStatus lays out the most recent records as a plain text table.
func RenderStatus(records []domain.TransferRecord) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"ID", "Name", "Phase", "Size", "Started"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")

	recent := records[:min(len(records), statusLimit)]
	table.AppendBulk(lo.Map(recent, func(r domain.TransferRecord, _ int) []string {
		return []string{
			shortID(r.ID),
			lo.Ternary(r.Name != "", r.Name, "-"),
			string(r.Phase),
			sizeOf(r),
			r.StartedAt.Format("15:04:05"),
		}
	}))
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}

func shortID(id domain.TransferID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

func sizeOf(r domain.TransferRecord) string {
	switch {
	case r.Total > 0:
		return humanize.Bytes(uint64(r.Total))
	case r.Bytes > 0:
		return humanize.Bytes(uint64(r.Bytes))
	default:
		return "?"
	}
}
