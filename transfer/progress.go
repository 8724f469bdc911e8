package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// ProgressFunc adapts a function to contract.ProgressReporter.
type ProgressFunc func(p domain.Progress)

func (f ProgressFunc) Report(p domain.Progress) {
	f(p)
}

// NopProgress discards every report.
var NopProgress contract.ProgressReporter = ProgressFunc(func(domain.Progress) {})

// Throttle bounds how often a chat progress message is edited.
type Throttle struct {
	Interval time.Duration
	MinDelta float64 // percentage points
}

// MinProgressInterval is the shortest gap allowed between two edits of a progress message.
const MinProgressInterval = time.Second

func (t Throttle) bounded() Throttle {
	if t.Interval < MinProgressInterval {
		t.Interval = MinProgressInterval
	}
	return t
}

// ChatProgress keeps a single chat message up to date with a transfer's progress.
// Uploads report from the delivery client's goroutine, hence the lock.
type ChatProgress struct {
	mu        sync.Mutex
	ctx       context.Context
	messenger contract.Messenger
	log       *slog.Logger
	chatID    domain.ChatID
	messageID domain.MessageID
	label     string
	throttle  Throttle
	now       func() time.Time
	reported  bool
	lastAt    time.Time
	lastPct   float64
}

// StartChatProgress posts the initial "<label>..." message that later reports edit.
func StartChatProgress(ctx context.Context, messenger contract.Messenger, log *slog.Logger,
	chatID domain.ChatID, label string, throttle Throttle) *ChatProgress {
	p := &ChatProgress{
		ctx:       ctx,
		messenger: messenger,
		log:       log,
		chatID:    chatID,
		label:     label,
		throttle:  throttle.bounded(),
		now:       time.Now,
	}
	id, err := messenger.SendText(ctx, chatID, label+"...")
	if err != nil {
		log.Warn("Unable to post progress message", "chat_id", chatID, "error", err)
		return p
	}
	p.messageID = id
	return p
}

// ResumeChatProgress edits an already posted message.
func ResumeChatProgress(ctx context.Context, messenger contract.Messenger, log *slog.Logger,
	chatID domain.ChatID, messageID domain.MessageID, label string, throttle Throttle) *ChatProgress {
	return &ChatProgress{
		ctx:       ctx,
		messenger: messenger,
		log:       log,
		chatID:    chatID,
		messageID: messageID,
		label:     label,
		throttle:  throttle.bounded(),
		now:       time.Now,
	}
}

func (p *ChatProgress) MessageID() domain.MessageID {
	return p.messageID
}

func (p *ChatProgress) Report(progress domain.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.messageID == 0 || !p.due(progress) {
		return
	}
	p.reported = true
	p.lastAt = p.now()
	p.lastPct = progress.Percentage

	if err := p.messenger.EditText(p.ctx, p.chatID, p.messageID, FormatProgress(p.label, progress)); err != nil {
		p.log.Debug("Progress update dropped", "chat_id", p.chatID, "error", err)
	}
}

func (p *ChatProgress) due(progress domain.Progress) bool {
	if !p.reported {
		return true
	}
	if progress.Known() && progress.Transferred >= progress.Total {
		return p.lastPct < 100
	}
	if p.now().Sub(p.lastAt) < p.throttle.Interval {
		return false
	}
	if !progress.Known() {
		return true
	}
	return progress.Percentage-p.lastPct >= p.throttle.MinDelta
}

// FormatProgress renders a progress snapshot for the chat.
func FormatProgress(label string, p domain.Progress) string {
	speed := humanize.Bytes(uint64(p.Throughput)) + "/s"
	if !p.Known() {
		return fmt.Sprintf("%s... unknown%%\nReceived: %s\nSpeed: %s",
			label, humanize.Bytes(uint64(p.Transferred)), speed)
	}
	return fmt.Sprintf("%s... %.2f%%\nSpeed: %s", label, p.Percentage, speed)
}
