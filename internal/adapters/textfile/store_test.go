package textfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/corey/phraseboard/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Plain-text history files: <dir>/<user>_history.txt
// Expectation: lazy directory creation, append-only writes, CRLF-tolerant
// reads, missing file == empty history.
// =============================================================================

var (
	_ ports.HistoryStore = (*Store)(nil)
	_ ports.HistoryStore = (*ProfileStore)(nil)
)

func TestStore_CreatesDirLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")
	s := NewStore(dir)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "NewStore must not create the directory")

	require.NoError(t, s.AppendLine("sam", "2024/03/05 08:00:00 | hi"))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "sam_history.txt"), s.Path("sam"))
}

func TestStore_AppendAndRead(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.AppendLine("sam", "first"))
	require.NoError(t, s.AppendLine("sam", "second"))

	lines, err := s.ReadLines("sam")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lines)

	raw, err := os.ReadFile(s.Path("sam"))
	require.NoError(t, err)
	if runtime.GOOS == "windows" {
		assert.Equal(t, "first\r\nsecond\r\n", string(raw))
	} else {
		assert.Equal(t, "first\nsecond\n", string(raw))
	}
}

func TestStore_ReadsCRLF(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, os.WriteFile(s.Path("sam"), []byte("a\r\nb\r\n"), 0644))

	lines, err := s.ReadLines("sam")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestStore_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"))

	lines, err := s.ReadLines("sam")
	require.NoError(t, err)
	assert.Nil(t, lines)

	ok, err := s.Exists("sam")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete("sam"), "deleting a missing file succeeds")
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.AppendLine("sam", "x"))

	ok, err := s.Exists("sam")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete("sam"))
	ok, err = s.Exists("sam")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_HistoryFileIsNotProfileFile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "sam.txt")
	require.NoError(t, os.WriteFile(profile, []byte("Name: Sam\n"), 0644))

	s := NewStore(dir)
	require.NoError(t, s.AppendLine("sam", "hello"))
	require.NoError(t, s.Delete("sam"))

	raw, err := os.ReadFile(profile)
	require.NoError(t, err, "profile file must survive history writes and deletes")
	assert.Equal(t, "Name: Sam\n", string(raw))
}

// =============================================================================
// Legacy profile files: <dir>/<user>.txt
// =============================================================================

func TestProfileStore_ReadsMessageLines(t *testing.T) {
	dir := t.TempDir()
	p := NewProfileStore(dir)
	content := "Name: Sam\nAge: 9\nMessage: I want water\nFavorite: blue\nMessage: Good morning\n"
	require.NoError(t, os.WriteFile(p.Path("sam"), []byte(content), 0644))

	lines, err := p.ReadLines("sam")
	require.NoError(t, err)
	assert.Equal(t, []string{"Message: I want water", "Message: Good morning"}, lines)

	ok, err := p.Exists("sam")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProfileStore_Missing(t *testing.T) {
	p := NewProfileStore(t.TempDir())
	lines, err := p.ReadLines("sam")
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestProfileStore_ReadOnly(t *testing.T) {
	dir := t.TempDir()
	p := NewProfileStore(dir)
	require.NoError(t, os.WriteFile(p.Path("sam"), []byte("Message: hi\n"), 0644))

	assert.ErrorIs(t, p.AppendLine("sam", "x"), ErrReadOnly)
	assert.ErrorIs(t, p.Delete("sam"), ErrReadOnly)

	_, err := os.Stat(p.Path("sam"))
	assert.NoError(t, err)
}
