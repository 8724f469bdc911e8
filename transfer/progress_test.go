package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"relay-bot/domain"
	"relay-bot/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatProgress_Throttles(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	const chatID = domain.ChatID(1)

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().SendText(gomock.Any(), chatID, "Downloading...").Return(domain.MessageID(99), nil)

	var edits []string
	messenger.EXPECT().
		EditText(gomock.Any(), chatID, domain.MessageID(99), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ChatID, _ domain.MessageID, text string) error {
			edits = append(edits, text)
			return nil
		}).
		AnyTimes()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	progress := StartChatProgress(context.Background(), messenger, slog.Default(), chatID, "Downloading",
		Throttle{Interval: time.Second, MinDelta: 10})
	progress.now = clock.now

	report := func(done int64) {
		progress.Report(domain.Progress{Transferred: done, Total: 100, Percentage: float64(done)})
	}

	report(1) // first report always goes out
	report(2) // too soon
	clock.advance(2 * time.Second)
	report(5) // interval elapsed but delta too small
	report(20)
	report(25) // too soon
	report(100)
	report(100) // already complete

	req.Len(edits, 3)
	req.Contains(edits[0], "1.00%")
	req.Contains(edits[1], "20.00%")
	req.Contains(edits[2], "100.00%")
}

func TestChatProgress_UnknownTotalStillThrottled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().SendText(gomock.Any(), domain.ChatID(3), "Downloading...").Return(domain.MessageID(7), nil)
	edits := 0
	messenger.EXPECT().
		EditText(gomock.Any(), domain.ChatID(3), domain.MessageID(7), gomock.Any()).
		DoAndReturn(func(context.Context, domain.ChatID, domain.MessageID, string) error {
			edits++
			return nil
		}).
		AnyTimes()

	// Given no interval at all
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	progress := StartChatProgress(context.Background(), messenger, slog.Default(), 3, "Downloading", Throttle{})
	progress.now = clock.now

	for i := int64(1); i <= 50; i++ {
		progress.Report(domain.Progress{Transferred: i * domain.MB, Percentage: UnknownPercentage})
	}
	req.Equal(1, edits)

	clock.advance(MinProgressInterval)
	for i := int64(51); i <= 100; i++ {
		progress.Report(domain.Progress{Transferred: i * domain.MB, Percentage: UnknownPercentage})
	}
	req.Equal(2, edits)
}

func TestChatProgress_NoMessageNoEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().SendText(gomock.Any(), domain.ChatID(1), "Uploading...").Return(domain.MessageID(0), fmt.Errorf("blocked"))
	// EditText must never be called

	progress := StartChatProgress(context.Background(), messenger, slog.Default(), 1, "Uploading", Throttle{})
	progress.Report(domain.Progress{Transferred: 1, Total: 1, Percentage: 100})
}

func TestFormatProgress(t *testing.T) {
	req := require.New(t)
	req.Equal("Uploading... 12.50%\nSpeed: 1.0 MB/s",
		FormatProgress("Uploading", domain.Progress{Transferred: 1, Total: 8, Percentage: 12.5, Throughput: 1e6}))
	req.Equal("Downloading... unknown%\nReceived: 3.0 kB\nSpeed: 0 B/s",
		FormatProgress("Downloading", domain.Progress{Transferred: 3000, Percentage: UnknownPercentage}))
}
