package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStored(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		ok       bool
		expected Theme
	}{
		{"absent", "", false, ThemeNone},
		{"dark", "dark", true, ThemeDark},
		{"light", "light", true, ThemeLight},
		{"empty_string", "", true, ThemeNone},
		{"uppercase_is_malformed", "DARK", true, ThemeNone},
		{"padded_is_malformed", " dark", true, ThemeNone},
		{"unknown", "solarized", true, ThemeNone},
		{"value_ignored_when_absent", "dark", false, ThemeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStored(tt.value, tt.ok))
		})
	}
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, theme)

	theme, ok = ParseTheme("LIGHT")
	assert.True(t, ok)
	assert.Equal(t, ThemeLight, theme)

	theme, ok = ParseTheme("auto")
	assert.False(t, ok)
	assert.Equal(t, ThemeNone, theme)
}

func TestTheme_Opposite(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, ThemeDark, ThemeNone.Opposite())

	// Involution on the two defined states.
	assert.Equal(t, ThemeDark, ThemeDark.Opposite().Opposite())
	assert.Equal(t, ThemeLight, ThemeLight.Opposite().Opposite())
}

func TestTheme_ValidAndString(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, ThemeNone.Valid())
	assert.False(t, Theme("sepia").Valid())

	assert.Equal(t, "dark", ThemeDark.String())
	assert.Equal(t, "unset", ThemeNone.String())
}
