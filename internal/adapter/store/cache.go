// Package store persists extracted report text between runs so repeated
// scans of a large corpus skip the expensive PDF extraction step.
package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketExtractions = []byte("extractions")

// CacheStore is a bbolt-backed extraction cache keyed by absolute path.
type CacheStore struct {
	db *bbolt.DB
}

// NewCacheStore opens (or creates) the cache database at path.
func NewCacheStore(path string) (*CacheStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketExtractions)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CacheStore{db: db}, nil
}

type cacheEntry struct {
	ModTime int64  `json:"mod_time"`
	Text    string `json:"text"`
}

// Get returns the cached text for path when the stored modtime matches.
func (s *CacheStore) Get(path string, modTime int64) (string, bool) {
	var text string
	var found bool
	s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketExtractions).Get([]byte(path))
		if data == nil {
			return nil
		}
		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil
		}
		if entry.ModTime == modTime {
			text = entry.Text
			found = true
		}
		return nil
	})
	return text, found
}

// Put stores the extracted text for path.
func (s *CacheStore) Put(path string, modTime int64, text string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(cacheEntry{ModTime: modTime, Text: text})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketExtractions).Put([]byte(path), data)
	})
}

// Count returns the number of cached extractions.
func (s *CacheStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketExtractions).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear drops every cached extraction.
func (s *CacheStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketExtractions); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketExtractions)
		return err
	})
}

// Close closes the underlying database.
func (s *CacheStore) Close() error {
	return s.db.Close()
}
