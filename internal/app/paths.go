package app

import (
	"os"
	"path/filepath"

	"github.com/corey/phraseboard/internal/adapters/textfile"
)

// Paths holds all resolved filesystem paths under the data home.
// All fields are pre-computed strings; per-user files are derived on demand.
type Paths struct {
	Home        string // <home>/
	HistoryDir  string // <home>/history/
	ProfilesDir string // <home>/profiles/
	DB          string // <home>/phraseboard.db
}

// NewPaths constructs all resolved paths from a data home directory.
func NewPaths(home string) *Paths {
	return &Paths{
		Home:        home,
		HistoryDir:  filepath.Join(home, "history"),
		ProfilesDir: filepath.Join(home, "profiles"),
		DB:          filepath.Join(home, "phraseboard.db"),
	}
}

// HistoryFile returns <home>/history/<user>_history.txt.
func (p *Paths) HistoryFile(userID string) string {
	return filepath.Join(p.HistoryDir, userID+textfile.FileSuffix)
}

// ProfileFile returns <home>/profiles/<user>.txt.
func (p *Paths) ProfileFile(userID string) string {
	return filepath.Join(p.ProfilesDir, userID+".txt")
}

// EnsureHome creates the data home (not the history directory, which the
// history store creates lazily on first write). Idempotent.
func (p *Paths) EnsureHome() error {
	return os.MkdirAll(p.Home, 0755)
}
