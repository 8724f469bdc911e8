package workers

import (
	"context"
	"fmt"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"relay-bot/mocks"
	"relay-bot/transfer"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadWorker_Run(t *testing.T) {
	req := require.New(t)
	log := slog.Default()

	t.Run("Reports every upload outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uploader := mocks.NewMockIUploader(ctrl)
		messenger := mocks.NewMockMessenger(ctrl)
		jobs := make(chan domain.UploadJob, 2)
		reports := make(chan domain.Report, 2)

		ok := domain.UploadJob{TransferID: "ok", ChatID: 1, Artifact: domain.LocalArtifact{Name: "a.bin"}}
		ko := domain.UploadJob{TransferID: "ko", ChatID: 2, Artifact: domain.LocalArtifact{Name: "b.bin"}, ProgressMessage: 12}
		sendErr := fmt.Errorf("telegram down")

		uploader.EXPECT().Upload(gomock.Any(), domain.ChatID(1), ok.Artifact, gomock.Any()).Return(nil)
		uploader.EXPECT().
			Upload(gomock.Any(), domain.ChatID(2), ko.Artifact, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ChatID, _ domain.LocalArtifact, progress contract.ProgressReporter) error {
				_, isChat := progress.(*transfer.ChatProgress)
				req.True(isChat)
				return sendErr
			})

		jobs <- ok
		jobs <- ko
		close(jobs)

		worker := NewUploadWorker(log, uploader, messenger, transfer.Throttle{Interval: time.Second}, jobs, reports)
		req.NoError(worker.Run(context.Background()))

		first := <-reports
		req.Equal(domain.TransferID("ok"), first.TransferID)
		req.Equal("a.bin", first.Name)
		req.NoError(first.Err)

		second := <-reports
		req.Equal(domain.ChatID(2), second.ChatID)
		req.ErrorIs(second.Err, sendErr)
	})

	t.Run("Stops with the context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		worker := NewUploadWorker(log, mocks.NewMockIUploader(ctrl), mocks.NewMockMessenger(ctrl),
			transfer.Throttle{}, make(chan domain.UploadJob), make(chan domain.Report))
		req.ErrorIs(worker.Run(ctx), context.Canceled)
	})
}
