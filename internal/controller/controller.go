// Package controller implements the theme controller: it resolves the
// initial theme at load, applies it to the document root and flips and
// persists it on every click of the toggle button.
package controller

import (
	"log/slog"

	"github.com/jmylchreest/darktheme/internal/document"
	"github.com/jmylchreest/darktheme/internal/model"
	"github.com/jmylchreest/darktheme/internal/store"
)

// ThemeController owns the data-theme attribute of a document root.
type ThemeController struct {
	store  store.KeyValueStore
	root   *document.Root
	logger *slog.Logger

	// onChange is invoked after every toggle with the new theme.
	onChange func(theme model.Theme, persistErr error)
}

// Option configures a ThemeController.
type Option func(*ThemeController)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *ThemeController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithChangeCallback sets a callback invoked after each toggle.
func WithChangeCallback(fn func(theme model.Theme, persistErr error)) Option {
	return func(c *ThemeController) {
		c.onChange = fn
	}
}

// New creates a controller over store and root.
func New(kv store.KeyValueStore, root *document.Root, opts ...Option) *ThemeController {
	c := &ThemeController{
		store:  kv,
		root:   root,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StoredTheme returns the persisted preference, or ThemeNone when absent,
// malformed or unreadable.
func (c *ThemeController) StoredTheme() model.Theme {
	value, ok, err := c.store.GetItem(model.StorageKey)
	if err != nil {
		c.logger.Warn("failed to read stored theme", "error", err)
		return model.ThemeNone
	}
	theme := model.ParseStored(value, ok)
	if ok && theme == model.ThemeNone {
		c.logger.Debug("ignoring malformed stored theme", "value", value)
	}
	return theme
}

// ResolveInitialTheme applies the theme for a fresh load.
//
// Precedence:
//  1. no valid stored value and the system prefers dark: dark
//  2. stored "dark": dark
//  3. stored "light": light
//  4. otherwise the attribute is left unset
//
// It returns the applied theme, or ThemeNone when nothing was applied.
func (c *ThemeController) ResolveInitialTheme(prefersDark bool) model.Theme {
	stored := c.StoredTheme()

	switch {
	case stored == model.ThemeNone && prefersDark:
		c.ApplyDark()
		return model.ThemeDark
	case stored == model.ThemeDark:
		c.ApplyDark()
		return model.ThemeDark
	case stored == model.ThemeLight:
		c.ApplyLight()
		return model.ThemeLight
	default:
		return model.ThemeNone
	}
}

// Current returns the theme currently applied to the root.
func (c *ThemeController) Current() model.Theme {
	value, ok := c.root.Attribute(model.AttributeName)
	if !ok {
		return model.ThemeNone
	}
	return model.Theme(value)
}

// Toggle flips the applied theme and persists the new choice.
// Dark becomes light; anything else, including unset, becomes dark.
// The attribute is applied even when persisting fails.
func (c *ThemeController) Toggle() (model.Theme, error) {
	next := c.Current().Opposite()
	if next == model.ThemeLight {
		c.ApplyLight()
	} else {
		c.ApplyDark()
	}

	err := c.store.SetItem(model.StorageKey, string(next))
	if err != nil {
		c.logger.Warn("failed to persist theme", "theme", next, "error", err)
	}

	c.logger.Debug("theme toggled", "theme", next)
	if c.onChange != nil {
		c.onChange(next, err)
	}
	return next, err
}

// Set applies theme and persists it, making the same writes as a click
// that lands on theme.
func (c *ThemeController) Set(theme model.Theme) error {
	switch theme {
	case model.ThemeDark:
		c.ApplyDark()
	case model.ThemeLight:
		c.ApplyLight()
	default:
		return nil
	}
	return c.store.SetItem(model.StorageKey, string(theme))
}

// ApplyDark sets the root attribute to dark.
func (c *ThemeController) ApplyDark() {
	c.root.SetAttribute(model.AttributeName, string(model.ThemeDark))
}

// ApplyLight sets the root attribute to light.
func (c *ThemeController) ApplyLight() {
	c.root.SetAttribute(model.AttributeName, string(model.ThemeLight))
}

// Bind registers Toggle as the button's click listener.
func (c *ThemeController) Bind(button *document.Button) {
	if button == nil {
		c.logger.Debug("no toggle button to bind")
		return
	}
	button.AddClickListener(func() {
		_, _ = c.Toggle()
	})
}
