package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/secretsanta/roster"
)

const (
	participantsKey = "secret_santa_participants"
	exclusionsKey   = "secret_santa_exclusions"

	// draw:<created unix nano, zero padded>:<id> keeps draws in creation order.
	drawPrefix = "draw:"
	// idx:draw:<id> → primary draw key.
	drawIndexPrefix = "idx:draw:"
)

// BadgerStore keeps state in a Badger database.
type BadgerStore struct {
	db    *badger.DB
	log   *slog.Logger
	owned bool
}

// OpenBadger opens (or creates) a database at path. Close releases it.
func OpenBadger(path string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("storage: opening badger at %s: %w", path, err)
	}

	return &BadgerStore{db: db, log: orDiscard(log), owned: true}, nil
}

// NewBadgerStore wraps an existing database. Close leaves db open.
func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: orDiscard(log)}
}

// Load reads participants and exclusions. Missing keys load as empty lists.
func (b *BadgerStore) Load() (roster.Snapshot, error) {
	var s roster.Snapshot
	err := b.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, participantsKey, &s.Participants); err != nil {
			return err
		}
		return getJSON(txn, exclusionsKey, &s.Exclusions)
	})
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("storage: load: %w", err)
	}
	b.log.Debug("Roster loaded", "participants", len(s.Participants), "exclusions", len(s.Exclusions))

	return s, nil
}

// Save writes participants and exclusions in one transaction.
func (b *BadgerStore) Save(s roster.Snapshot) error {
	participants, err := json.Marshal(nonNil(s.Participants))
	if err != nil {
		return err
	}
	exclusions, err := json.Marshal(nonNil(s.Exclusions))
	if err != nil {
		return err
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(participantsKey), participants); err != nil {
			return err
		}
		return txn.Set([]byte(exclusionsKey), exclusions)
	})
	if err != nil {
		return fmt.Errorf("storage: save: %w", err)
	}
	b.log.Debug("Roster saved", "participants", len(s.Participants), "exclusions", len(s.Exclusions))

	return nil
}

// SaveDraw stores d under its creation time and indexes it by id.
func (b *BadgerStore) SaveDraw(d Draw) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	key := drawKey(d)

	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set([]byte(drawIndexPrefix+d.ID), key)
	})
	if err != nil {
		return fmt.Errorf("storage: save draw %s: %w", d.ID, err)
	}
	b.log.Info("Draw saved", "id", d.ID, "pairs", len(d.Pairs))

	return nil
}

// LoadDraw resolves id through the index.
func (b *BadgerStore) LoadDraw(id string) (Draw, error) {
	var d Draw
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(drawIndexPrefix + id))
		if err != nil {
			return err
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err = txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &d)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Draw{}, fmt.Errorf("%w: %s", ErrDrawNotFound, id)
	}
	if err != nil {
		return Draw{}, fmt.Errorf("storage: load draw %s: %w", id, err)
	}

	return d, nil
}

// ListDraws scans the draw prefix in key order, which is creation order.
func (b *BadgerStore) ListDraws() ([]Draw, error) {
	var draws []Draw
	prefix := []byte(drawPrefix)

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var d Draw
				if err := json.Unmarshal(val, &d); err != nil {
					// A corrupt record should not hide the rest of the history.
					b.log.Warn("Skipping unreadable draw", "key", string(item.Key()), "error", err)
					return nil
				}
				draws = append(draws, d)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list draws: %w", err)
	}

	return draws, nil
}

// Close closes the database if this store opened it.
func (b *BadgerStore) Close() error {
	if !b.owned {
		return nil
	}
	b.log.Debug("Closing BadgerDB...")

	return b.db.Close()
}

func drawKey(d Draw) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", drawPrefix, d.CreatedAt.UnixNano(), d.ID))
}

// getJSON decodes key into out, leaving out untouched when the key is absent.
func getJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}

	return log
}

var _ Store = (*BadgerStore)(nil)
