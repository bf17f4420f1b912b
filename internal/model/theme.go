package model

import "strings"

// Theme is a display mode preference.
type Theme string

const (
	// ThemeNone means no theme has been applied or stored.
	ThemeNone Theme = ""
	// ThemeLight is the light display mode.
	ThemeLight Theme = "light"
	// ThemeDark is the dark display mode.
	ThemeDark Theme = "dark"
)

// Storage and document keys shared by every component.
const (
	// StorageKey is the key the preference is persisted under.
	StorageKey = "theme"
	// AttributeName is the document root attribute carrying the applied theme.
	AttributeName = "data-theme"
	// ToggleSelector selects the element that flips the theme when clicked.
	ToggleSelector = ".btn--theme"
)

// ParseStored converts a stored value into a Theme.
// Only the exact strings "light" and "dark" are recognised; anything else,
// including an absent value, is ThemeNone.
func ParseStored(value string, ok bool) Theme {
	if !ok {
		return ThemeNone
	}
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value)
	default:
		return ThemeNone
	}
}

// ParseTheme parses user input (flags, CLI args) case-insensitively.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return ThemeNone, false
	}
}

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Opposite returns the theme a toggle moves to.
// Anything that is not dark, including ThemeNone, toggles to dark.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the theme name, or "unset" for ThemeNone.
func (t Theme) String() string {
	if t == ThemeNone {
		return "unset"
	}
	return string(t)
}
