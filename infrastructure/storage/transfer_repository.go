package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"relay-bot/contract"
	"relay-bot/domain"
	relayerrors "relay-bot/errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.ITransferRepository = (*TransferRepository)(nil)

const (
	recordPrefix = "transfer:"
	lookupPrefix = "id:"
)

// TransferRepository keeps transfer records in an in-memory Badger instance.
// Records of finished transfers expire after ttl.
type TransferRepository struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
	now func() time.Time
}

func NewTransferRepository(db *badger.DB, log *slog.Logger, ttl time.Duration) *TransferRepository {
	return &TransferRepository{db: db, log: log, ttl: ttl, now: time.Now}
}

// recordKey groups records by chat so a chat listing is a prefix scan.
func recordKey(chatID domain.ChatID, id domain.TransferID) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", recordPrefix, chatID, id))
}

func lookupKey(id domain.TransferID) []byte {
	return []byte(lookupPrefix + string(id))
}

func chatPrefix(chatID domain.ChatID) []byte {
	return []byte(fmt.Sprintf("%s%d:", recordPrefix, chatID))
}

func (r *TransferRepository) Save(record domain.TransferRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = r.now()
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return r.put(txn, record)
	})
}

// UpdatePhase moves a record to a new phase. Terminal phases start the expiry countdown.
func (r *TransferRepository) UpdatePhase(id domain.TransferID, phase domain.Phase) error {
	return r.db.Update(func(txn *badger.Txn) error {
		record, err := r.get(txn, id)
		if err != nil {
			return err
		}
		record.Phase = phase
		record.UpdatedAt = r.now()
		return r.put(txn, record)
	})
}

func (r *TransferRepository) Get(id domain.TransferID) (domain.TransferRecord, error) {
	var record domain.TransferRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = r.get(txn, id)
		return err
	})
	return record, err
}

// ListByChat returns the records of a chat, most recent first.
func (r *TransferRepository) ListByChat(chatID domain.ChatID) ([]domain.TransferRecord, error) {
	records, err := r.scan(chatPrefix(chatID))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b domain.TransferRecord) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	return records, nil
}

// ActiveIDs returns the transfers that still own a local artifact.
func (r *TransferRepository) ActiveIDs() (map[domain.TransferID]struct{}, error) {
	records, err := r.scan([]byte(recordPrefix))
	if err != nil {
		return nil, err
	}
	active := make(map[domain.TransferID]struct{})
	for _, record := range records {
		if !record.Phase.Terminal() {
			active[record.ID] = struct{}{}
		}
	}
	return active, nil
}

func (r *TransferRepository) put(txn *badger.Txn, record domain.TransferRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer %s: %w", record.ID, err)
	}
	key := recordKey(record.ChatID, record.ID)
	value := badger.NewEntry(key, data)
	lookup := badger.NewEntry(lookupKey(record.ID), key)
	if record.Phase.Terminal() && r.ttl > 0 {
		value = value.WithTTL(r.ttl)
		lookup = lookup.WithTTL(r.ttl)
	}
	if err := txn.SetEntry(value); err != nil {
		return err
	}
	return txn.SetEntry(lookup)
}

func (r *TransferRepository) get(txn *badger.Txn, id domain.TransferID) (domain.TransferRecord, error) {
	var record domain.TransferRecord
	item, err := txn.Get(lookupKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return record, fmt.Errorf("%w: %s", relayerrors.ErrTransferNotFound, id)
	}
	if err != nil {
		return record, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return record, err
	}

	item, err = txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return record, fmt.Errorf("%w: %s", relayerrors.ErrTransferNotFound, id)
	}
	if err != nil {
		return record, err
	}
	err = item.Value(func(v []byte) error {
		return json.Unmarshal(v, &record)
	})
	return record, err
}

func (r *TransferRepository) scan(prefix []byte) ([]domain.TransferRecord, error) {
	var records []domain.TransferRecord
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var record domain.TransferRecord
				if err := json.Unmarshal(v, &record); err != nil {
					return fmt.Errorf("failed to unmarshal transfer: %w", err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during transfer scan: %w", err)
	}
	return records, nil
}
