// Package history keeps a local database of generation runs.
//
// Every recorded run carries the seed, the clock reading and the settings
// it was generated with, which is enough to replay it byte for byte.
// Runs are stored as JSON documents in a bbolt bucket keyed by run id.
//
// # Basic Usage
//
//	store, err := history.Open("fakes.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	runs, err := store.List(10)
package history

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/json"
)

var runsBucket = []byte("runs")

// Run is one recorded generation.
type Run struct {
	ID   string    `json:"id"`
	Time time.Time `json:"time"`
	Seed uint64    `json:"seed"`

	Locale           string   `json:"locale"`
	Converter        string   `json:"converter"`
	Count            int      `json:"count"`
	Header           bool     `json:"header"`
	Columns          []string `json:"columns"`
	Compression      string   `json:"compression"`
	CompressionLevel string   `json:"compression_level"`
	Output           string   `json:"output"`

	Records int   `json:"records"`
	Bytes   int64 `json:"bytes"`
}

// Store is a bbolt-backed run history. It is safe for concurrent use.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the history database at path, along with
// missing parent directories.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "failed to create history directory").
			WithDetail("path", path)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "failed to open history database").
			WithDetail("path", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrorTypeStorage, "failed to create runs bucket")
	}

	return &Store{db: db}, nil
}

// Record stores run, replacing any run with the same id.
func (s *Store) Record(run Run) error {
	if run.ID == "" {
		return errors.New(errors.ErrorTypeValidation, "run has no id")
	}
	data, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode run")
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage, "failed to record run").
			WithDetail("run_id", run.ID)
	}
	return nil
}

// Get returns the run whose id is id or starts with it. A prefix matching
// more than one run is rejected.
func (s *Store) Get(id string) (Run, error) {
	var matches []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		prefix := []byte(id)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return errors.Wrap(err, errors.ErrorTypeStorage, "failed to decode run").
					WithDetail("run_id", string(k))
			}
			matches = append(matches, run)
		}
		return nil
	})
	if err != nil {
		return Run{}, err
	}

	switch len(matches) {
	case 0:
		return Run{}, errors.Newf(errors.ErrorTypeNotFound, "no run %q in history", id)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return Run{}, errors.Newf(errors.ErrorTypeValidation, "run id %q is ambiguous", id).
			WithDetail("matches", ids)
	}
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]Run, error) {
	runs, err := s.all()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Prune deletes all but the newest keep runs and returns how many were
// deleted. keep <= 0 keeps everything.
func (s *Store) Prune(keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	runs, err := s.all()
	if err != nil {
		return 0, err
	}
	if len(runs) <= keep {
		return 0, nil
	}

	stale := runs[keep:]
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(runsBucket)
		for _, run := range stale {
			if err := b.Delete([]byte(run.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeStorage, "failed to prune history")
	}
	return len(stale), nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) all() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return errors.Wrap(err, errors.ErrorTypeStorage, "failed to decode run").
					WithDetail("run_id", string(k))
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Time.Equal(runs[j].Time) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].Time.After(runs[j].Time)
	})
	return runs, nil
}
