package storage

import (
	"log/slog"
	"os"
	"relay-bot/domain"
	relayerrors "relay-bot/errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes an in-memory Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newRecord(chatID domain.ChatID, startedAt time.Time) domain.TransferRecord {
	return domain.TransferRecord{
		ID:        domain.TransferID(uuid.NewString()),
		ChatID:    chatID,
		Name:      "file.bin",
		Phase:     domain.PhaseDownloading,
		StartedAt: startedAt,
	}
}

func TestTransferRepository_SaveAndGet(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := NewTransferRepository(db, logger, time.Hour)

	record := newRecord(1, time.Now().UTC())
	req.NoError(repo.Save(record))

	got, err := repo.Get(record.ID)
	req.NoError(err)
	req.Equal(record.ID, got.ID)
	req.Equal(domain.PhaseDownloading, got.Phase)
	req.False(got.UpdatedAt.IsZero())

	req.NoError(repo.UpdatePhase(record.ID, domain.PhaseUploading))
	got, err = repo.Get(record.ID)
	req.NoError(err)
	req.Equal(domain.PhaseUploading, got.Phase)

	_, err = repo.Get("unknown")
	req.ErrorIs(err, relayerrors.ErrTransferNotFound)
	req.ErrorIs(repo.UpdatePhase("unknown", domain.PhaseFailed), relayerrors.ErrTransferNotFound)
}

func TestTransferRepository_ListByChat(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewTransferRepository(db, slog.Default(), time.Hour)

	now := time.Now().UTC()
	older := newRecord(1, now.Add(-time.Minute))
	newer := newRecord(1, now)
	other := newRecord(11, now)
	for _, r := range []domain.TransferRecord{older, newer, other} {
		req.NoError(repo.Save(r))
	}

	// Chat 1 must not see chat 11 even though its key shares the digit prefix
	records, err := repo.ListByChat(1)
	req.NoError(err)
	req.Len(records, 2)
	req.Equal(newer.ID, records[0].ID)
	req.Equal(older.ID, records[1].ID)

	records, err = repo.ListByChat(2)
	req.NoError(err)
	req.Empty(records)
}

func TestTransferRepository_ActiveIDs(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewTransferRepository(db, slog.Default(), time.Hour)

	downloading := newRecord(1, time.Now())
	done := newRecord(1, time.Now())
	failed := newRecord(2, time.Now())
	for _, r := range []domain.TransferRecord{downloading, done, failed} {
		req.NoError(repo.Save(r))
	}
	req.NoError(repo.UpdatePhase(done.ID, domain.PhaseCompleted))
	req.NoError(repo.UpdatePhase(failed.ID, domain.PhaseFailed))

	active, err := repo.ActiveIDs()
	req.NoError(err)
	req.Len(active, 1)
	req.Contains(active, downloading.ID)
}

func TestTransferRepository_TerminalRecordsExpire(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewTransferRepository(db, slog.Default(), time.Second)

	record := newRecord(1, time.Now())
	req.NoError(repo.Save(record))
	req.NoError(repo.UpdatePhase(record.ID, domain.PhaseCompleted))

	// Badger TTLs have a one second resolution
	req.Eventually(func() bool {
		_, err := repo.Get(record.ID)
		return relayerrors.Is(err, relayerrors.ErrTransferNotFound)
	}, 5*time.Second, 100*time.Millisecond)

	records, err := repo.ListByChat(1)
	req.NoError(err)
	req.Empty(records)
}
