package tester

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTester(t *testing.T) *Tester {
	t.Helper()

	tr, err := New(Options{URL: "http://example.com", Workers: 5, Timeout: time.Second})
	require.NoError(t, err)
	return tr
}

func TestLoadFromReader(t *testing.T) {
	input := strings.Join([]string{
		"host1:1234:username:password",
		"",
		"  host2:80::  ",
		"malformed-line",
		"host3:nan:u:p",
		"host4:443:u:",
	}, "\n")

	tr := newTestTester(t)
	added, err := tr.LoadFromReader(strings.NewReader(input))
	require.NoError(t, err)

	// Malformed lines are skipped, not fatal.
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, tr.Count())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxies.txt")
	content := "host1:1234:username:password\nhost2:8080:u:p\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tr := newTestTester(t)
	added, err := tr.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// A second source appends to the same working set.
	added, err = tr.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 4, tr.Count())
}

func TestLoadFromFileMissing(t *testing.T) {
	tr := newTestTester(t)
	_, err := tr.LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	assert.True(t, tr.IsEmpty())
}
