package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSceneWatcher(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "scene.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("name: a\n"), 0o644))

	changes := make(chan struct{}, 16)
	w, err := newSceneWatcher([]string{watched}, func() { changes <- struct{}{} })
	require.NoError(t, err)
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Other files in the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("name: b\n"), 0o644))
	select {
	case <-changes:
		t.Fatal("unexpected change notification for", other)
	case <-time.After(200 * time.Millisecond):
	}

	// A burst of writes is reported once
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte("name: c\n"), 0o644))
	}
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification for", watched)
	}
	select {
	case <-changes:
		t.Fatal("burst reported more than once")
	case <-time.After(200 * time.Millisecond):
	}
}
