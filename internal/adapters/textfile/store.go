// Package textfile implements ports.HistoryStore as one plain-text file per
// user under a base directory:
//
//	<dir>/<user>_history.txt
//
// The directory is created lazily on the first append. Lines are written
// with the platform line terminator and read back with either terminator.
// There is no file locking: concurrent appends from several processes may
// interleave.
package textfile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/m-mizutani/goerr/v2"
)

// FileSuffix is appended to the user id to name the history file. It keeps
// the history file distinct from the profile file <user>.txt.
const FileSuffix = "_history.txt"

// maxLineSize bounds a single log line read back from disk.
const maxLineSize = 1 << 20

// Store implements ports.HistoryStore on the local filesystem.
type Store struct {
	dir     string
	newline string
}

// NewStore returns a store rooted at dir. Nothing is created until the first
// append.
func NewStore(dir string) *Store {
	nl := "\n"
	if runtime.GOOS == "windows" {
		nl = "\r\n"
	}
	return &Store{dir: dir, newline: nl}
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the history file of userID.
func (s *Store) Path(userID string) string {
	return filepath.Join(s.dir, userID+FileSuffix)
}

// AppendLine appends line plus terminator, creating the directory and file
// if absent.
func (s *Store) AppendLine(userID, line string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create history dir", goerr.V("dir", s.dir))
	}

	path := s.Path(userID)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open history file", goerr.V("path", path))
	}
	if _, err := f.WriteString(line + s.newline); err != nil {
		f.Close()
		return goerr.Wrap(err, "failed to write history line", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close history file", goerr.V("path", path))
	}
	return nil
}

// ReadLines returns every line of the user's file, or nil, nil when the file
// does not exist.
func (s *Store) ReadLines(userID string) ([]string, error) {
	return readLines(s.Path(userID))
}

// Delete removes the user's file. A missing file is not an error.
func (s *Store) Delete(userID string) error {
	path := s.Path(userID)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to delete history file", goerr.V("path", path))
	}
	return nil
}

// Exists reports whether the user's file is present.
func (s *Store) Exists(userID string) (bool, error) {
	return fileExists(s.Path(userID))
}

// readLines scans path line by line. "\r\n" terminators are stripped along
// with "\n".
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to scan file", goerr.V("path", path))
	}
	return lines, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
	}
}
