// Package tui provides the BubbleTea-based terminal page with the theme toggle.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/darktheme/internal/controller"
	"github.com/jmylchreest/darktheme/internal/model"
	"github.com/jmylchreest/darktheme/internal/system"
)

const pageTitle = "darktheme"

// Model is the main TUI model.
type Model struct {
	page   *controller.Page
	system system.Preference

	help     help.Model
	keys     KeyMap
	showHelp bool

	width  int
	height int

	// Status message
	statusMsg string
	statusErr bool
}

// RunOptions configures the TUI.
type RunOptions struct {
	Page     *controller.Page
	System   system.Preference
	ShowHelp bool
}

// New creates a TUI model over a loaded page.
func New(opts RunOptions) Model {
	return Model{
		page:     opts.Page,
		system:   opts.System,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		showHelp: opts.ShowHelp,
	}
}

// Run starts the TUI and blocks until it exits.
func Run(opts RunOptions) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			m.click()
		case key.Matches(msg, m.keys.Dark):
			m.set(model.ThemeDark)
		case key.Matches(msg, m.keys.Light):
			m.set(model.ThemeLight)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.onButton(msg.X, msg.Y) {
			m.click()
		}
		return m, nil
	}

	return m, nil
}

// click dispatches a click to the page's toggle button.
func (m *Model) click() {
	m.page.Click()
	m.statusMsg = fmt.Sprintf("switched to %s", m.Theme())
	m.statusErr = false
}

func (m *Model) set(theme model.Theme) {
	err := m.page.Controller.Set(theme)
	if err != nil {
		m.statusMsg = fmt.Sprintf("applied %s, but failed to save: %v", theme, err)
		m.statusErr = true
		return
	}
	m.statusMsg = fmt.Sprintf("saved %s", theme)
	m.statusErr = false
}

// Theme returns the theme currently applied to the page.
func (m Model) Theme() model.Theme {
	return m.page.Controller.Current()
}

func (m Model) buttonLabel() string {
	if m.Theme() == model.ThemeDark {
		return "☀ Light mode"
	}
	return "☾ Dark mode"
}

// layout renders the page pieces; the button's position is derived from it.
func (m Model) layout() (s styles, title, button string) {
	s = newStyles(m.Theme())
	title = s.Title.Render(pageTitle)
	button = s.Button.Render(m.buttonLabel())
	return s, title, button
}

// onButton reports whether the cell (x, y) falls inside the toggle button.
func (m Model) onButton(x, y int) bool {
	s, title, button := m.layout()
	top := s.Page.GetPaddingTop() + lipgloss.Height(title) + 1
	left := s.Page.GetPaddingLeft()
	return y >= top && y < top+lipgloss.Height(button) &&
		x >= left && x < left+lipgloss.Width(button)
}

// View implements tea.Model.
func (m Model) View() string {
	s, title, button := m.layout()

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(button)
	b.WriteString("\n\n")

	source := m.system.Source
	if source == "" {
		source = "none"
	}
	b.WriteString(s.Status.Render(fmt.Sprintf("%s=%s  system prefers dark: %t (%s)",
		model.AttributeName, m.Theme(), m.system.PrefersDark, source)))

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(s.Error.Render(m.statusMsg))
		} else {
			b.WriteString(s.Status.Render(m.statusMsg))
		}
	}

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}

	page := s.Page
	if m.width > 0 && m.height > 0 {
		page = page.Width(m.width).Height(m.height)
	}
	return page.Render(b.String())
}
