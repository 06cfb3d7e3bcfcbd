package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/handiism/courses-manager/internal/config"
)

func newTestModel(t *testing.T) (Model, *config.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := config.NewStore(dir, config.WithLogger(zerolog.Nop()))
	path := filepath.Join(dir, "cfg.json")
	return NewModel(store, path, config.DefaultConfiguration()), store, path
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func clearInput(m Model) Model {
	m.inputs[m.focus].SetValue("")
	return m
}

func TestModel_InitialValues(t *testing.T) {
	m, _, _ := newTestModel(t)

	cfg, err := m.Configuration()
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfiguration(), cfg)
	require.Equal(t, FieldCoursesFilePath, m.Focused())
	require.Equal(t, StateEditing, m.State())
}

func TestModel_FocusCycles(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, want := range []Field{FieldNameLength, FieldGradeLength, FieldPointsLength, FieldCoursesFilePath} {
		m, _ = update(t, m, key(tea.KeyTab))
		require.Equal(t, want, m.Focused())
	}

	m, _ = update(t, m, key(tea.KeyShiftTab))
	require.Equal(t, FieldPointsLength, m.Focused())
}

func TestModel_EditAndSave(t *testing.T) {
	m, store, path := newTestModel(t)

	m, _ = update(t, m, key(tea.KeyTab))
	m = clearInput(m)
	m = typeText(t, m, "45")

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	require.Equal(t, StateSaving, m.State())
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(SavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	require.Equal(t, path, saved.Path)

	m, _ = update(t, m, saved)
	require.Equal(t, StateSaved, m.State())
	require.NoError(t, m.Err())
	require.Contains(t, m.View(), "Saved")

	cfg, err := store.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 45, cfg.NameLength)
	require.Equal(t, filepath.Join(store.Dir(), "courses.json"), cfg.CoursesFilePath)
}

func TestModel_EnterOnLastFieldSaves(t *testing.T) {
	m, _, _ := newTestModel(t)

	for range 3 {
		m, _ = update(t, m, key(tea.KeyEnter))
		require.Equal(t, StateEditing, m.State())
	}
	require.Equal(t, FieldPointsLength, m.Focused())

	m, cmd := update(t, m, key(tea.KeyEnter))
	require.Equal(t, StateSaving, m.State())
	require.NotNil(t, cmd)
}

func TestModel_InvalidWidthBlocksSave(t *testing.T) {
	m, _, path := newTestModel(t)

	m, _ = update(t, m, key(tea.KeyTab))
	m, _ = update(t, m, key(tea.KeyTab))
	m = clearInput(m)
	m = typeText(t, m, "wide")

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	require.Nil(t, cmd)
	require.Equal(t, StateEditing, m.State())
	require.ErrorContains(t, m.Err(), "grade width")
	require.Contains(t, m.View(), "whole number")
	require.NoFileExists(t, path)
}

func TestModel_SaveErrorReturnsToEditing(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, key(tea.KeyCtrlS))
	m, _ = update(t, m, SavedMsg{Err: errTest})
	require.Equal(t, StateEditing, m.State())
	require.ErrorIs(t, m.Err(), errTest)
}

func TestModel_SavedStateKeys(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, SavedMsg{})
	require.Equal(t, StateSaved, m.State())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.Equal(t, StateEditing, m.State())

	m, _ = update(t, m, SavedMsg{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("disk full")

func TestLogLevel(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"", "error"},
		{"debug", "debug"},
		{"warn", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			if got := LogLevel(tt.requested); got != tt.want {
				t.Errorf("LogLevel(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}
