package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	historyBucket = "history"
	keyBytes      = 16
)

// boltStore implements a Store backed by BoltDB.
// Keys are big-endian unix nanos followed by a sequence number, so cursor order is time order.
type boltStore struct {
	db              *bolt.DB
	seq             atomic.Uint64
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	recordTTL       time.Duration
	cleanupInterval time.Duration
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		recordTTL:       opts.RecordTTL,
		cleanupInterval: opts.CleanupInterval,
	}
	store.lastCleanup.Store(time.Now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Record appends rec to the history.
func (b *boltStore) Record(rec Record) error {
	if b == nil || b.db == nil {
		return nil
	}
	if rec.At.IsZero() {
		rec.At = time.Now()
	}
	if err := b.maybeCleanupExpired(time.Now()); err != nil {
		return err
	}

	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	key := encodeKey(rec.At, b.seq.Add(1))

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}
		return bucket.Put(key, val)
	})
}

// Recent returns up to limit records, newest first. A limit <= 0 returns all of them.
func (b *boltStore) Recent(limit int) ([]Record, error) {
	if b == nil || b.db == nil {
		return nil, nil
	}

	var out []Record
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}
		cursor := bucket.Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode record: %w", err)
			}
			out = append(out, rec)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// maybeCleanupExpired removes expired records on a fixed cadence to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	cutoff := now.Add(-b.recordTTL)
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}

		var expired [][]byte
		cursor := bucket.Cursor()
		for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
			at, ok := decodeKey(k)
			if ok && at.After(cutoff) {
				break
			}
			expired = append(expired, append([]byte(nil), k...))
		}
		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

func encodeKey(at time.Time, seq uint64) []byte {
	buf := make([]byte, keyBytes)
	binary.BigEndian.PutUint64(buf[:8], uint64(at.UnixNano()))
	binary.BigEndian.PutUint64(buf[8:], seq)
	return buf
}

// decodeKey decodes the record time from a history key.
func decodeKey(key []byte) (time.Time, bool) {
	if len(key) != keyBytes {
		return time.Time{}, false
	}
	nanos := int64(binary.BigEndian.Uint64(key[:8]))
	if nanos <= 0 {
		return time.Time{}, false
	}
	return time.Unix(0, nanos), true
}
