// Package bbolt implements ports.AcceptanceStore using bbolt (embedded B+ tree).
// Each user gets a sub-bucket under the top-level "acceptances" bucket. Records
// are keyed by the bucket sequence (big-endian) so a cursor walks them in
// insertion order; values are JSON. Writes are transactional: a crash
// mid-write cannot corrupt previously committed records.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/corey/phraseboard/internal/ports"
	"github.com/m-mizutani/goerr/v2"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketAcceptances = []byte("acceptances")
)

// OpenTimeout bounds how long NewStore waits for the file lock held by
// another process.
const OpenTimeout = 1 * time.Second

// Store implements ports.AcceptanceStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, goerr.Wrap(err, "bbolt open", goerr.V("path", path))
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.db.Path()
}

// RecordAcceptance appends a to the user's acceptances.
func (s *Store) RecordAcceptance(a ports.Acceptance) error {
	data, err := json.Marshal(a)
	if err != nil {
		return goerr.Wrap(err, "marshal acceptance", goerr.V("user_id", a.UserID))
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketAcceptances)
		if err != nil {
			return err
		}
		ub, err := root.CreateBucketIfNotExists([]byte(a.UserID))
		if err != nil {
			return err
		}
		seq, err := ub.NextSequence()
		if err != nil {
			return err
		}
		return ub.Put(seqKey(seq), data)
	})
	if err != nil {
		return goerr.Wrap(err, "record acceptance", goerr.V("user_id", a.UserID))
	}
	return nil
}

// LoadAcceptances returns the user's acceptances oldest first.
// Returns nil, nil if none were recorded.
func (s *Store) LoadAcceptances(userID string) ([]ports.Acceptance, error) {
	var out []ports.Acceptance

	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketAcceptances)
		if root == nil {
			return nil
		}
		ub := root.Bucket([]byte(userID))
		if ub == nil {
			return nil
		}
		// Values are only valid inside the transaction; Unmarshal copies.
		return ub.ForEach(func(k, v []byte) error {
			var a ports.Acceptance
			if err := json.Unmarshal(v, &a); err != nil {
				return goerr.Wrap(err, "unmarshal acceptance", goerr.V("seq", binary.BigEndian.Uint64(k)))
			}
			out = append(out, a)
			return nil
		})
	})
	if err != nil {
		return nil, goerr.Wrap(err, "load acceptances", goerr.V("user_id", userID))
	}
	return out, nil
}

// DeleteUser removes all acceptances of a user.
// Idempotent: deleting a user with no records is not an error.
func (s *Store) DeleteUser(userID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketAcceptances)
		if root == nil {
			return nil
		}
		if err := root.DeleteBucket([]byte(userID)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "delete acceptances", goerr.V("user_id", userID))
	}
	return nil
}

// seqKey encodes a bucket sequence as a sortable 8-byte key.
func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
