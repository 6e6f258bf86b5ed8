package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/corey/phraseboard/internal/adapters/bbolt"
	"github.com/corey/phraseboard/internal/ports"
	"github.com/m-mizutani/goerr/v2"
)

// acceptanceDB implements ports.AcceptanceStore by opening the bbolt file
// for each operation. bbolt holds an exclusive file lock while open, so a
// long-running command (watch) must not keep it from short ones (accept).
type acceptanceDB struct {
	path string
}

var _ ports.AcceptanceStore = (*acceptanceDB)(nil)

func (d *acceptanceDB) RecordAcceptance(a ports.Acceptance) error {
	return d.with(true, func(s *bbolt.Store) error {
		return s.RecordAcceptance(a)
	})
}

func (d *acceptanceDB) LoadAcceptances(userID string) ([]ports.Acceptance, error) {
	var out []ports.Acceptance
	err := d.with(false, func(s *bbolt.Store) error {
		var err error
		out, err = s.LoadAcceptances(userID)
		return err
	})
	return out, err
}

func (d *acceptanceDB) DeleteUser(userID string) error {
	return d.with(false, func(s *bbolt.Store) error {
		return s.DeleteUser(userID)
	})
}

// with opens the store, runs fn and closes it. Without create, a missing
// DB file means there is nothing to read or delete and fn is skipped.
func (d *acceptanceDB) with(create bool, fn func(*bbolt.Store) error) error {
	if create {
		if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
			return goerr.Wrap(err, "failed to create data home", goerr.V("path", d.path))
		}
	} else if _, err := os.Stat(d.path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	s, err := bbolt.NewStore(d.path)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}
