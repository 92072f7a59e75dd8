// Package bbolt implements the ports.ResultCache interface using bbolt
// (embedded B+ tree). Entries live in a single "results" bucket keyed by
// content hash. Writes are transactional — a crash mid-write cannot corrupt
// previously committed entries.
package bbolt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketResults = []byte("results")

// Cache implements ports.ResultCache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) a bbolt cache at the given path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketResults)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying bbolt database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives a cache key from the normalized input text and an option
// fingerprint. Same text + same options ⇒ same key; the engine is
// deterministic, so the cached result is always valid for that pair.
func Key(text, fingerprint string) string {
	sum := sha256.Sum256([]byte(fingerprint + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached result. The second return is false on a miss.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketResults).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("bbolt get: %w", err)
	}
	return value, value != nil, nil
}

// Put stores a result, overwriting any prior value for the key.
func (c *Cache) Put(key string, value []byte) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketResults).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("bbolt put: %w", err)
	}
	return nil
}
