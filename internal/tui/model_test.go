package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/darktheme/internal/controller"
	"github.com/jmylchreest/darktheme/internal/model"
	"github.com/jmylchreest/darktheme/internal/store"
	"github.com/jmylchreest/darktheme/internal/system"
)

func newTestModel(t *testing.T, prefersDark bool) (Model, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	page := controller.Load(kv, prefersDark)
	return New(RunOptions{
		Page:     page,
		System:   system.Preference{PrefersDark: prefersDark, Source: "static"},
		ShowHelp: true,
	}), kv
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func stored(t *testing.T, kv *store.MemoryStore) string {
	t.Helper()
	v, ok, err := kv.GetItem(model.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	return v
}

func TestModel_ToggleKeys(t *testing.T) {
	m, kv := newTestModel(t, false)
	assert.Equal(t, model.ThemeNone, m.Theme())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ThemeDark, m.Theme())
	assert.Equal(t, "dark", stored(t, kv))

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, model.ThemeLight, m.Theme())
	assert.Equal(t, "light", stored(t, kv))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.Equal(t, model.ThemeDark, m.Theme())
	assert.Contains(t, m.View(), "switched to dark")
}

func TestModel_ExplicitThemeKeys(t *testing.T) {
	m, kv := newTestModel(t, true)
	assert.Equal(t, model.ThemeDark, m.Theme())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, model.ThemeLight, m.Theme())
	assert.Equal(t, "light", stored(t, kv))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Equal(t, model.ThemeDark, m.Theme())
	assert.Equal(t, "dark", stored(t, kv))
}

func TestModel_MouseClickOnButton(t *testing.T) {
	m, kv := newTestModel(t, false)

	s, title, _ := m.layout()
	top := s.Page.GetPaddingTop() + lipgloss.Height(title) + 1
	left := s.Page.GetPaddingLeft()

	// Press alone does nothing
	m = update(t, m, tea.MouseMsg{X: left + 1, Y: top + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, model.ThemeNone, m.Theme())

	m = update(t, m, tea.MouseMsg{X: left + 1, Y: top + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, model.ThemeDark, m.Theme())
	assert.Equal(t, "dark", stored(t, kv))

	// Clicking outside the button is ignored
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, model.ThemeDark, m.Theme())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsAttribute(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "data-theme=dark")
	assert.Contains(t, view, "Light mode")
	assert.Contains(t, view, "(static)")
}

func TestPaletteFor(t *testing.T) {
	_, ok := paletteFor(model.ThemeNone)
	assert.False(t, ok)

	dark, ok := paletteFor(model.ThemeDark)
	assert.True(t, ok)
	light, ok := paletteFor(model.ThemeLight)
	assert.True(t, ok)
	assert.NotEqual(t, dark.Background, light.Background)
}
