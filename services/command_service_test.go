package services

import (
	"context"
	"fmt"
	"log/slog"
	"relay-bot/domain"
	"relay-bot/errors"
	"relay-bot/mocks"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commandFixture struct {
	service      *CommandService
	messenger    *mocks.MockMessenger
	orchestrator *mocks.MockIOrchestrator
	renamer      *mocks.MockIRenamer
	repository   *mocks.MockITransferRepository
}

func newCommandFixture(ctrl *gomock.Controller) commandFixture {
	f := commandFixture{
		messenger:    mocks.NewMockMessenger(ctrl),
		orchestrator: mocks.NewMockIOrchestrator(ctrl),
		renamer:      mocks.NewMockIRenamer(ctrl),
		repository:   mocks.NewMockITransferRepository(ctrl),
	}
	f.service = NewCommandService(slog.Default(), f.messenger, f.orchestrator, f.renamer, NewDeliveryMode(), f.repository)
	return f
}

func TestCommandService_Handle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	const chatID = domain.ChatID(21)

	t.Run("Simple replies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)

		gomock.InOrder(
			f.messenger.EXPECT().SendText(ctx, chatID, MsgWelcome).Return(domain.MessageID(1), nil),
			f.messenger.EXPECT().SendText(ctx, chatID, "Send as Media").Return(domain.MessageID(2), nil),
			f.messenger.EXPECT().SendText(ctx, chatID, "Send as Document").Return(domain.MessageID(3), nil),
			f.messenger.EXPECT().SendText(ctx, chatID, MsgHelp).Return(domain.MessageID(4), nil),
			f.messenger.EXPECT().SendText(ctx, chatID, MsgUnknownCommand).Return(domain.MessageID(5), fmt.Errorf("ignored")),
		)

		for _, name := range []domain.CommandName{
			domain.CommandStart, domain.CommandToggle, domain.CommandToggle, domain.CommandHelp, domain.CommandUnknown,
		} {
			f.service.Handle(ctx, domain.Command{Name: name, ChatID: chatID})
		}
	})

	t.Run("Download forwards link and name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)

		f.orchestrator.EXPECT().
			Run(ctx, domain.TransferRequest{ChatID: chatID, Link: "https://example.com/a.zip", Name: "my archive.zip"}).
			Return(nil)

		f.service.Handle(ctx, domain.Command{Name: domain.CommandDownload, ChatID: chatID,
			Args: []string{"https://example.com/a.zip", "my", "archive.zip"}})
	})

	t.Run("Download errors become chat messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)

		gomock.InOrder(
			f.orchestrator.EXPECT().Run(ctx, gomock.Any()).Return(errors.Usage("download", errors.ErrMissingLink)),
			f.messenger.EXPECT().SendText(ctx, chatID, errors.MsgMissingLink).Return(domain.MessageID(1), nil),
			f.orchestrator.EXPECT().Run(ctx, gomock.Any()).Return(errors.Link("download", errors.ErrUnexpectedStatus)),
			f.messenger.EXPECT().SendText(ctx, chatID, errors.MsgDownloadFailed).Return(domain.MessageID(2), nil),
		)

		f.service.Handle(ctx, domain.Command{Name: domain.CommandDownload, ChatID: chatID})
		f.service.Handle(ctx, domain.Command{Name: domain.CommandDownload, ChatID: chatID, Args: []string{"https://example.com/404"}})
	})

	t.Run("Rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)
		doc := &domain.RemoteFile{FileID: "f1", FileName: "report.pdf"}

		gomock.InOrder(
			f.renamer.EXPECT().Rename(ctx, domain.RenameRequest{ChatID: chatID, File: doc, NewName: "q3 summary"}).Return(nil),
			f.renamer.EXPECT().Rename(ctx, domain.RenameRequest{ChatID: chatID, NewName: "x"}).
				Return(errors.Usage("rename", errors.ErrMissingAttachment)),
			f.messenger.EXPECT().SendText(ctx, chatID, errors.MsgMissingAttachment).Return(domain.MessageID(1), nil),
			f.renamer.EXPECT().Rename(ctx, gomock.Any()).Return(errors.Delivery("fetch file", fmt.Errorf("timeout"))),
			f.messenger.EXPECT().SendText(ctx, chatID, errors.MsgRenameFailed).Return(domain.MessageID(2), nil),
		)

		f.service.Handle(ctx, domain.Command{Name: domain.CommandRename, ChatID: chatID, Args: []string{"q3", "summary"}, Document: doc})
		f.service.Handle(ctx, domain.Command{Name: domain.CommandRename, ChatID: chatID, Args: []string{"x"}})
		f.service.Handle(ctx, domain.Command{Name: domain.CommandRename, ChatID: chatID, Args: []string{"y"}, Document: doc})
	})

	t.Run("Status without transfers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)

		f.repository.EXPECT().ListByChat(chatID).Return(nil, nil)
		f.messenger.EXPECT().SendText(ctx, chatID, MsgNoTransfers).Return(domain.MessageID(1), nil)
		f.service.Handle(ctx, domain.Command{Name: domain.CommandStatus, ChatID: chatID})
	})

	t.Run("Status renders records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCommandFixture(ctrl)

		started := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
		f.repository.EXPECT().ListByChat(chatID).Return([]domain.TransferRecord{
			{ID: "0f8c2b9e-aaaa", Name: "movie.mkv", Phase: domain.PhaseUploading, Total: 3 * 1000 * 1000, StartedAt: started},
		}, nil)
		f.messenger.EXPECT().
			SendPreformatted(ctx, chatID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ChatID, text string) error {
				req.Contains(text, "0f8c2b9e")
				req.NotContains(text, "aaaa")
				req.Contains(text, "movie.mkv")
				req.Contains(text, "uploading")
				req.Contains(text, "3.0 MB")
				req.Contains(text, "14:30:00")
				return nil
			})
		f.service.Handle(ctx, domain.Command{Name: domain.CommandStatus, ChatID: chatID})
	})
}

func TestRenderStatus_Limit(t *testing.T) {
	req := require.New(t)
	var records []domain.TransferRecord
	for i := 0; i < statusLimit+5; i++ {
		records = append(records, domain.TransferRecord{ID: domain.TransferID(fmt.Sprintf("id-%02d", i)), Phase: domain.PhaseCompleted})
	}

	out := RenderStatus(records)
	req.Equal(statusLimit, strings.Count(out, "id-"))
	req.Contains(out, "PHASE")
	req.NotContains(out, "id-10")
	req.Contains(out, "?")
}
