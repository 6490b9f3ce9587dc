package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/adapters/watcher"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, root string) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(mockLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	require.NoError(t, w.Start(ctx, root))

	events := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return w, events
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed before %s", path)
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsCreate(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, root)

	path := filepath.Join(root, "2149_1_item_1.pes")
	require.NoError(t, os.WriteFile(path, []byte("#PES"), domain.FilePerm))

	ev := waitFor(t, events, path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, root)

	dir := filepath.Join(root, "orders")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitFor(t, events, dir)

	path := filepath.Join(dir, "a.pes")
	require.NoError(t, os.WriteFile(path, []byte("x"), domain.FilePerm))
	waitFor(t, events, path)
}

func TestWatcher_IgnoresHoopDir(t *testing.T) {
	root := t.TempDir()
	hoopDir := filepath.Join(root, domain.HoopDirName)
	require.NoError(t, os.Mkdir(hoopDir, domain.DirPerm))
	_, events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(hoopDir, "cache"), []byte("x"), domain.FilePerm))
	marker := filepath.Join(root, "marker.pes")
	require.NoError(t, os.WriteFile(marker, []byte("x"), domain.FilePerm))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.NotContains(t, ev.Path, domain.HoopDirName)
			if ev.Path == marker {
				return
			}
		case <-timeout:
			t.Fatal("no event for marker")
		}
	}
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, t.TempDir()))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancel")
	}
}
