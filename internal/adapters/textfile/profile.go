package textfile

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/corey/phraseboard/internal/domain/history"
)

// ErrReadOnly is returned by write operations on a ProfileStore.
var ErrReadOnly = errors.New("profile history is read-only")

// ProfileStore reads message history out of legacy profile files:
//
//	<dir>/<user>.txt
//
// Profiles hold "Key: value" lines; only "Message: ..." lines carry history
// and only those are returned, unchanged, so the history line parser decodes
// them as message-only entries. The store never writes: the profile file is
// owned by the profile editor.
type ProfileStore struct {
	dir string
}

// NewProfileStore returns a read-only store over profile files in dir.
func NewProfileStore(dir string) *ProfileStore {
	return &ProfileStore{dir: dir}
}

// Path returns the profile file of userID.
func (p *ProfileStore) Path(userID string) string {
	return filepath.Join(p.dir, userID+".txt")
}

// AppendLine always fails with ErrReadOnly.
func (p *ProfileStore) AppendLine(string, string) error {
	return ErrReadOnly
}

// ReadLines returns the profile's "Message:" lines in file order, or nil,
// nil when the profile does not exist.
func (p *ProfileStore) ReadLines(userID string) ([]string, error) {
	lines, err := readLines(p.Path(userID))
	if err != nil || lines == nil {
		return nil, err
	}
	msgs := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), history.LegacyPrefix) {
			msgs = append(msgs, line)
		}
	}
	return msgs, nil
}

// Delete always fails with ErrReadOnly.
func (p *ProfileStore) Delete(string) error {
	return ErrReadOnly
}

// Exists reports whether the profile file is present.
func (p *ProfileStore) Exists(userID string) (bool, error) {
	return fileExists(p.Path(userID))
}
