package config

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type reloads struct {
	mu   sync.Mutex
	cfgs []*Configuration
	errs []error
}

func (r *reloads) record(cfg *Configuration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfgs = append(r.cfgs, cfg)
	r.errs = append(r.errs, err)
}

func (r *reloads) last() (*Configuration, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.cfgs)
	if n == 0 {
		return nil, 0, nil
	}
	return r.cfgs[n-1], n, r.errs[n-1]
}

func TestStore_Watch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store, dir := newTestStore(t)
	path := filepath.Join(dir, "watched.json")
	require.NoError(t, store.Save(DefaultConfiguration(), path))

	ctx, cancel := context.WithCancel(context.Background())
	var got reloads
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, path, got.record)
	}()

	// Give the watcher time to register before the first write.
	time.Sleep(100 * time.Millisecond)

	updated := DefaultConfiguration()
	updated.NameLength = 42
	require.NoError(t, store.Save(updated, path))

	require.Eventually(t, func() bool {
		cfg, _, err := got.last()
		return err == nil && cfg != nil && cfg.NameLength == 42
	}, 5*time.Second, 20*time.Millisecond)

	writeFile(t, path, `{"broken"`)
	require.Eventually(t, func() bool {
		_, _, err := got.last()
		return err != nil
	}, 5*time.Second, 20*time.Millisecond)

	_, _, err := got.last()
	require.ErrorIs(t, err, ErrInvalidConfig)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestStore_Watch_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store, dir := newTestStore(t)
	path := filepath.Join(dir, "watched.json")
	require.NoError(t, store.Save(DefaultConfiguration(), path))

	ctx, cancel := context.WithCancel(context.Background())
	var got reloads
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, path, got.record)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, store.Save(DefaultConfiguration(), filepath.Join(dir, "other.json")))
	time.Sleep(2 * watchDebounce)

	_, n, _ := got.last()
	require.Zero(t, n)

	cancel()
	require.NoError(t, <-done)
}

func TestStore_Watch_MissingDirectory(t *testing.T) {
	store, dir := newTestStore(t)

	err := store.Watch(context.Background(), filepath.Join(dir, "nope", "cfg.json"), func(*Configuration, error) {})
	require.Error(t, err)
}
