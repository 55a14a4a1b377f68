package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"tally/internal/receipt"
)

const bucketName = "receipts"

// BoltStore is a Store backed by an embedded BoltDB file. All records live
// in a single bucket, JSON-encoded and keyed by identifier, so a single
// file on disk is the whole database and records survive restarts.
type BoltStore struct {
	db *bolt.DB
}

// Put records the receipt and points under id. A second Put with the same
// id overwrites the stored record. Returns an error only on backend I/O
// or encoding failure.
func (bs *BoltStore) Put(id string, r receipt.Receipt, points int64) error {
	data, err := json.Marshal(Record{Receipt: r, Points: points})
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	return bs.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(id), data)
	})
}

// Points returns the stored points for id, or *NotFoundError when no
// record exists.
func (bs *BoltStore) Points(id string) (int64, error) {
	var record Record

	err := bs.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(id))
		if data == nil {
			return NewNotFoundError(id)
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		return 0, err
	}

	return record.Points, nil
}

// Exists reports whether a record is present for id.
func (bs *BoltStore) Exists(id string) bool {
	found := false
	bs.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(bucketName)).Get([]byte(id)) != nil
		return nil
	})
	return found
}

// Close releases the database file lock.
func (bs *BoltStore) Close() error {
	return bs.db.Close()
}

// NewBoltStore opens (or creates) a BoltDB database at the given path and
// ensures the receipts bucket exists. Creating the bucket is safe to run
// on every startup.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Compile-time check: BoltStore implements Store.
var _ Store = (*BoltStore)(nil)
