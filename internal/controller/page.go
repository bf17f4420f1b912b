package controller

import (
	"github.com/jmylchreest/darktheme/internal/document"
	"github.com/jmylchreest/darktheme/internal/model"
	"github.com/jmylchreest/darktheme/internal/store"
)

// Page is a loaded document with its controller bound to the toggle button.
type Page struct {
	Document   *document.Document
	Controller *ThemeController
	Initial    model.Theme
}

// Load builds a page the way a browser load does: bind the toggle button,
// then resolve the initial theme from storage and the system preference.
func Load(kv store.KeyValueStore, prefersDark bool, opts ...Option) *Page {
	doc := document.New(document.NewButton(model.ToggleSelector))
	c := New(kv, doc.Root(), opts...)
	c.Bind(doc.QuerySelector(model.ToggleSelector))
	initial := c.ResolveInitialTheme(prefersDark)

	return &Page{
		Document:   doc,
		Controller: c,
		Initial:    initial,
	}
}

// Click clicks the toggle button.
func (p *Page) Click() {
	if b := p.Document.QuerySelector(model.ToggleSelector); b != nil {
		b.Click()
	}
}
