package watch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ksc/internal/errors"
	"ksc/pkg/testutils"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutils.WriteFile(t, filepath.Dir(path), filepath.Base(path), content)
}

func TestWatcher_WriteEvent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "shortcuts.txt")
	writeFile(t, target, "command c\n")

	w, err := New(target)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	writeFile(t, filepath.Join(dir, "other.txt"), "ignored")
	writeFile(t, target, "command v\n")

	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "Event channel closed unexpectedly")
		assert.Equal(t, w.Path(), ev.Path)
		assert.True(t, ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create))
		assert.False(t, ev.Timestamp.IsZero())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for WRITE event")
	}
}

func TestWatcher_Debounce(t *testing.T) {
	target := filepath.Join(t.TempDir(), "shortcuts.txt")
	writeFile(t, target, "")

	w, err := New(target, WithDebounce(200*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		writeFile(t, target, "command q\n")
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for debounced event")
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_ContextCancelClosesEvents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "shortcuts.txt")
	writeFile(t, target, "")

	w, err := New(target)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	assert.True(t, w.IsRunning())
	cancel()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("Events channel was not closed")
	}
	assert.Eventually(t, func() bool { return !w.IsRunning() }, time.Second, 10*time.Millisecond)
	w.Stop()
}

func TestWatcher_StartStop(t *testing.T) {
	target := filepath.Join(t.TempDir(), "shortcuts.txt")
	writeFile(t, target, "")

	w, err := New(target)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()), "second Start should fail")

	w.Stop()
	w.Stop()
	assert.False(t, w.IsRunning())
	assert.Error(t, w.Start(context.Background()), "Start after Stop should fail")
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	target := filepath.Join(t.TempDir(), "shortcuts.txt")
	writeFile(t, target, "")

	w, err := New(target)
	require.NoError(t, err)
	w.Stop()

	_, ok := <-w.Events()
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))

	_, err = New(dir)
	assert.Error(t, err)
}
