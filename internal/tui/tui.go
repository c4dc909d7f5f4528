// Package tui provides the interactive terminal interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nonzeroday/nzd/internal/service"
	"github.com/nonzeroday/nzd/internal/tui/ui"
	"github.com/nonzeroday/nzd/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabToday Tab = iota
	TabProfile
)

var tabNames = []string{"Today", "Profile"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	todayView   views.TodayModel
	profileView views.ProfileModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabToday,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		todayView:     views.NewTodayModel(services, styles, keys),
		profileView:   views.NewProfileModel(services, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.todayView.Init(),
		m.profileView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The log form and the reset dialog capture all keys
		modalInput := m.isModalInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !modalInput:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !modalInput:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1) && !modalInput:
			m.activeTab = TabToday
			return m, nil

		case key.Matches(msg, m.keys.Tab2) && !modalInput:
			m.activeTab = TabProfile
			return m, nil

		case key.Matches(msg, m.keys.Theme) && !modalInput:
			return m.cycleTheme()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.todayView.SetSize(m.width, contentHeight)
		m.profileView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.LogCreatedMsg, ui.HistoryResetMsg:
		// Data changed; both views refresh their derived state
		m.todayView, cmd = m.todayView.Update(msg)
		cmds = append(cmds, cmd)
		m.profileView, cmd = m.profileView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update the active view
	switch m.activeTab {
	case TabToday:
		m.todayView, cmd = m.todayView.Update(msg)
	case TabProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabToday:
		b.WriteString(m.todayView.View())
	case TabProfile:
		b.WriteString(m.profileView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isModalInputMode() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabToday:
			parts = append(parts, m.renderKeyHelp("l", "log"))
			parts = append(parts, m.renderKeyHelp("s", "spark"))
		case TabProfile:
			parts = append(parts, m.renderKeyHelp("m", "reflection"))
			parts = append(parts, m.renderKeyHelp("x", "reset"))
		}

		parts = append(parts, m.renderKeyHelp("1-2", "views"))
		parts = append(parts, m.renderKeyHelp("t", "theme"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the current view is capturing keyboard input
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabToday:
		return m.todayView.IsInputMode()
	case TabProfile:
		return m.profileView.IsConfirming()
	}
	return false
}

// cycleTheme switches to the next theme, rebuilds styles, broadcasts the
// change, and persists the selection.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	name := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
	m.todayView, _ = m.todayView.Update(themeMsg)
	m.profileView, _ = m.profileView.Update(themeMsg)

	return m, func() tea.Msg {
		_ = m.services.Config.Set("theme", name)
		return nil
	}
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-2    Switch views\n")
	help.WriteString("  t          Cycle color theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabToday:
		help.WriteString(m.styles.StatLabel.Render("Today:"))
		help.WriteString("\n")
		help.WriteString("  l          Open the log form\n")
		help.WriteString("  s          Fetch a new spark\n")
		help.WriteString("  r          Refresh\n")
	case TabProfile:
		help.WriteString(m.styles.StatLabel.Render("Profile:"))
		help.WriteString("\n")
		help.WriteString("  m          Generate monthly reflection\n")
		help.WriteString("  x          Reset history (with confirmation)\n")
		help.WriteString("  r          Refresh\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
