package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_Candidates(t *testing.T) {
	store, dir := newTestStore(t)

	good := filepath.Join(dir, "courses_manager_config_aaa.json")
	bad := filepath.Join(dir, "courses_manager_config_bbb.json")
	writeFile(t, good, `{"courses_file_path":"c.json","name_length":10,"grade_length":2,"points_length":5}`)
	writeFile(t, bad, `{"courses_file_path":`)
	writeFile(t, filepath.Join(dir, "ignored.json"), `{}`)

	candidates, err := store.Candidates(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	require.Equal(t, good, candidates[0].Path)
	require.True(t, candidates[0].Valid())
	require.Equal(t, 10, candidates[0].Config.NameLength)

	require.Equal(t, bad, candidates[1].Path)
	require.False(t, candidates[1].Valid())
	require.Nil(t, candidates[1].Config)
	require.ErrorIs(t, candidates[1].Err, ErrInvalidConfig)
}

func TestStore_Candidates_Many(t *testing.T) {
	store, _ := newTestStore(t)

	for range 10 {
		_, _, err := store.CreateDefault()
		require.NoError(t, err)
	}

	candidates, err := store.Candidates(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 10)
	for i, c := range candidates {
		require.True(t, c.Valid(), "candidate %d: %v", i, c.Err)
		if i > 0 {
			require.Less(t, candidates[i-1].Path, c.Path)
		}
	}
}

func TestStore_Candidates_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	candidates, err := store.Candidates(context.Background())
	require.NoError(t, err)
	require.Empty(t, candidates)
}

func TestStore_Candidates_Cancelled(t *testing.T) {
	store, _ := newTestStore(t)
	_, _, err := store.CreateDefault()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Candidates(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
