package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFileAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	when := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, when, when))
	return path
}

func TestFindRecent(t *testing.T) {
	dir := t.TempDir()
	writeFileAged(t, dir, "chase_statement.csv", time.Hour)
	writeFileAged(t, dir, "activity.ofx", 24*time.Hour)
	writeFileAged(t, dir, "notes.txt", time.Hour)
	writeFileAged(t, dir, "old_statement.csv", 60*24*time.Hour)

	files, err := FindRecent(dir, 30)
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Sorted, and the multi-pattern match deduplicated.
	assert.Equal(t, filepath.Join(dir, "activity.ofx"), files[0])
	assert.Equal(t, filepath.Join(dir, "chase_statement.csv"), files[1])
}

func TestFindRecent_BankNamePattern(t *testing.T) {
	dir := t.TempDir()
	writeFileAged(t, dir, "discover-activity.csv", time.Hour)

	files, err := FindRecent(dir, 30)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFindRecent_Empty(t *testing.T) {
	_, err := FindRecent(t.TempDir(), 30)
	assert.True(t, errors.Is(err, ErrNoFiles))
}
