package suite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"watched.json": "{}",
		"other.json":   "{}",
	})
	watched := filepath.Join(dir, "watched.json")

	w, err := NewWatcher(watched)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("[]"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, watched, name)
	case err := <-w.Errors:
		t.Fatalf("Unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for change event")
	}
}

func TestWatcherSeesFinalWrite(t *testing.T) {
	dir := writeFiles(t, map[string]string{"doc.json": "{}"})
	path := filepath.Join(dir, "doc.json")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Save in two steps, the way some editors do.
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"final":true}`), 0o644))

	var last string
	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			bs, err := os.ReadFile(name)
			require.NoError(t, err)
			last = string(bs)
			continue
		case err := <-w.Errors:
			t.Fatalf("Unexpected watcher error: %v", err)
		case <-time.After(500 * time.Millisecond):
			if last == "" {
				continue
			}
		case <-timeout:
		}
		break
	}
	assert.Equal(t, `{"final":true}`, last)
}

func TestWatcherClose(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.json": "{}"})

	w, err := NewWatcher(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok, "expected Events to be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("Events not closed after Close")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "a.json"))
	assert.Error(t, err)
}
