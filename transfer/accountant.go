package transfer

import (
	"relay-bot/domain"
	"time"
)

// UnknownPercentage is returned when the total size of a transfer is unknown.
const UnknownPercentage = -1.0

// minElapsed keeps throughput finite on the very first tick.
const minElapsed = time.Millisecond

// Accountant tracks bytes moved by a single transfer.
// It is owned by exactly one transfer and is not safe for concurrent use.
type Accountant struct {
	total       int64
	transferred int64
	start       time.Time
	now         func() time.Time
}

func NewAccountant() *Accountant {
	return &Accountant{now: time.Now}
}

// Start records the begin timestamp and resets counters.
// A negative total is treated as unknown.
func (a *Accountant) Start(total int64) {
	if total < 0 {
		total = 0
	}
	a.total = total
	a.transferred = 0
	a.start = a.now()
}

// Advance adds n bytes. Non-positive values are ignored so the counter never decreases.
func (a *Accountant) Advance(n int) {
	if n <= 0 {
		return
	}
	a.transferred += int64(n)
}

func (a *Accountant) Transferred() int64 {
	return a.transferred
}

func (a *Accountant) Total() int64 {
	return a.total
}

// Percentage returns the completion in [0, 100], or UnknownPercentage when the total is unknown.
func (a *Accountant) Percentage() float64 {
	if a.total <= 0 {
		return UnknownPercentage
	}
	return 100 * float64(a.transferred) / float64(a.total)
}

func (a *Accountant) Elapsed() time.Duration {
	if a.start.IsZero() {
		return 0
	}
	return a.now().Sub(a.start)
}

// Throughput returns bytes per second since Start.
func (a *Accountant) Throughput() float64 {
	elapsed := a.Elapsed()
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	return float64(a.transferred) / elapsed.Seconds()
}

func (a *Accountant) Snapshot() domain.Progress {
	return domain.Progress{
		Transferred: a.transferred,
		Total:       a.total,
		Percentage:  a.Percentage(),
		Throughput:  a.Throughput(),
		Elapsed:     a.Elapsed(),
	}
}
