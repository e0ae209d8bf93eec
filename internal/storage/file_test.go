package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	// Nothing set yet
	_, ok, err := s.Get(PostsKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenFileStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "nested", "board.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Dir(path))
	require.NoError(t, err)
}

func TestFileStore_SetGet(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(filepath.Join(dir, "board.json"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ThemeKey, "dark"))

	v, ok, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(filepath.Join(dir, "board.json"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ThemeKey, "dark"))
	require.NoError(t, s.Set(ThemeKey, "light"))

	v, _, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	s1, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ThemeKey, "dark"))
	require.NoError(t, s1.Set(PostsKey, `[{"id":"1"}]`))
	s1.Close()

	// Simulates a page reload: reopen and read back
	s2, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	v, ok, err = s2.Get(PostsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(filepath.Join(dir, "board.json"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ThemeKey, "dark"))
	require.NoError(t, s.Delete(ThemeKey))

	_, ok, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error
	assert.NoError(t, s.Delete("never-set"))
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(PostsKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Broken file is kept aside
	_, err = os.Stat(path + ".corrupted")
	assert.NoError(t, err)
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ThemeKey, "dark"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Closed(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(filepath.Join(dir, "board.json"))
	require.NoError(t, err)

	require.NoError(t, s.Close())

	_, _, err = s.Get(ThemeKey)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(ThemeKey, "dark"), ErrStoreClosed)
	assert.ErrorIs(t, s.Delete(ThemeKey), ErrStoreClosed)
}

func TestFileStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ThemeKey, "dark"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
