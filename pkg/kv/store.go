package kv

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/dgraph-io/badger/v4"
)

var (
	ErrKeyNotFound    = errors.New("kv: key not found")
	ErrUnknownBackend = errors.New("kv: unknown backend")
)

const (
	BADGER = "badger"
	PEBBLE = "pebble"
)

// Store key-value storage di bawah route cache.
type Store interface {
	Get(key []byte) ([]byte, error)
	Set(key, val []byte) error
	SetBatch(entries []Entry) error
	DeletePrefix(prefix []byte) error
	Close() error
}

type Entry struct {
	Key []byte
	Val []byte
}

// Open buka store sesuai backend. path kosong = in-memory.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BADGER:
		return NewBadgerStore(path)
	case PEBBLE:
		return NewPebbleStore(path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("kv: open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Get(key []byte) ([]byte, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	return val, err
}

func (b *BadgerStore) Set(key, val []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func (b *BadgerStore) SetBatch(entries []Entry) error {
	batch := b.db.NewWriteBatch()
	defer batch.Cancel()

	for _, e := range entries {
		if err := batch.Set(e.Key, e.Val); err != nil {
			return err
		}
	}
	return batch.Flush()
}

func (b *BadgerStore) DeletePrefix(prefix []byte) error {
	return b.db.DropPrefix(prefix)
}

func (b *BadgerStore) Close() error {
	return b.db.Close()
}

type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(path string) (*PebbleStore, error) {
	opts := &pebble.Options{}
	if path == "" {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("kv: open pebble: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func (p *PebbleStore) Get(key []byte) ([]byte, error) {
	val, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (p *PebbleStore) Set(key, val []byte) error {
	return p.db.Set(key, val, pebble.Sync)
}

func (p *PebbleStore) SetBatch(entries []Entry) error {
	batch := p.db.NewBatch()
	defer batch.Close()

	for _, e := range entries {
		if err := batch.Set(e.Key, e.Val, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (p *PebbleStore) DeletePrefix(prefix []byte) error {
	return p.db.DeleteRange(prefix, prefixEnd(prefix), pebble.Sync)
}

func (p *PebbleStore) Close() error {
	return p.db.Close()
}

// prefixEnd key terkecil yang lebih besar dari semua key ber-prefix.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
