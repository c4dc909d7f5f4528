package views

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nonzeroday/nzd/internal/motivation"
	"github.com/nonzeroday/nzd/internal/service"
	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/tui/ui"
)

// profileMode represents the current mode of the profile view
type profileMode int

const (
	profileModeNormal profileMode = iota
	profileModeConfirmReset
)

// reflectFetchTimeout bounds the reflection round trip inside the TUI
const reflectFetchTimeout = 30 * time.Second

// ProfileModel is the model for the profile view
type ProfileModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	history *service.HistoryResult
	balance *service.BalanceResult
	err     error

	// Reflection state
	reflection     string
	reflectionFor  string // month name the letter belongs to
	reflectLoading bool
	reflectErr     error

	// Reset confirmation state
	mode       profileMode
	resetQuote string
}

// NewProfileModel creates a new profile view model
func NewProfileModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ProfileModel {
	return ProfileModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// profileLoadedMsg is sent when the profile data is loaded
type profileLoadedMsg struct {
	history service.HistoryResult
	balance service.BalanceResult
}

// reflectionLoadedMsg is sent when the monthly reflection finishes
type reflectionLoadedMsg struct {
	result *service.ReflectResult
	err    error
}

// resetDoneMsg is sent when a reset or restore attempt finishes
type resetDoneMsg struct {
	err error
}

// Init implements tea.Model
func (m ProfileModel) Init() tea.Cmd {
	return m.loadProfile()
}

// Update implements tea.Model
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == profileModeConfirmReset {
			return m.handleConfirmKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Reflect):
			if m.reflectLoading {
				return m, nil
			}
			m.reflectLoading = true
			m.reflectErr = nil
			return m, m.loadReflection()
		case key.Matches(msg, m.keys.Reset):
			m.mode = profileModeConfirmReset
			m.resetQuote = motivation.RestartQuotes[rand.Intn(len(motivation.RestartQuotes))]
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadProfile()
		}

	case profileLoadedMsg:
		m.history = &msg.history
		m.balance = &msg.balance

	case reflectionLoadedMsg:
		m.reflectLoading = false
		if msg.err != nil {
			m.reflectErr = msg.err
			return m, nil
		}
		m.reflection = msg.result.Letter
		m.reflectionFor = msg.result.Stats.MonthName

	case resetDoneMsg:
		m.mode = profileModeNormal
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.reflection = ""
		m.reflectionFor = ""
		return m, func() tea.Msg { return ui.HistoryResetMsg{} }

	case ui.LogCreatedMsg, ui.HistoryResetMsg:
		return m, m.loadProfile()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleConfirmKeys handles keys while the reset dialog is open
func (m ProfileModel) handleConfirmKeys(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch {
	case msg.String() == "y", key.Matches(msg, m.keys.Select):
		return m, m.doReset()
	case key.Matches(msg, m.keys.Back), msg.String() == "n":
		m.mode = profileModeNormal
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m ProfileModel) View() string {
	if m.mode == profileModeConfirmReset {
		return m.renderResetDialog()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Profile"))
	b.WriteString("\n\n")

	if m.history == nil || m.balance == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	// Recent pattern
	b.WriteString(m.styles.StatLabel.Render("Recent pattern:"))
	b.WriteString(" ")
	b.WriteString(RenderGrid(m.history.Cells, m.styles))
	b.WriteString("\n\n")

	// Life balance
	if m.balance.TotalLogs == 0 {
		b.WriteString(m.styles.StreakLabel.Render("No logs yet. Log your first action in the Today view."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.ViewTitle.Render("Life balance"))
	b.WriteString("\n")
	maxCount := 0
	for _, cb := range m.balance.Breakdown {
		if cb.Count > maxCount {
			maxCount = cb.Count
		}
	}
	for _, cb := range m.balance.Breakdown {
		b.WriteString(fmt.Sprintf("%s %s %d\n",
			m.styles.StatLabel.Render(cb.Category.DisplayLabel()),
			m.styles.Bar.Render(renderBar(cb.Count, maxCount, 20)),
			cb.Count))
	}

	if m.balance.HasMood {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Avg mood shift:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%+.1f", m.balance.MoodShift)))
		b.WriteString("\n")
	}

	// Recent logs
	if len(m.history.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render("Recent logs"))
		b.WriteString("\n")
		b.WriteString(RenderLogList(m.history.Recent, m.styles, LogRenderOptions{ShowDate: true, Width: m.width}))
	}

	// Monthly reflection
	b.WriteString("\n")
	if m.reflectLoading {
		b.WriteString(m.styles.StreakLabel.Render("Writing this month's reflection..."))
		b.WriteString("\n")
	} else if m.reflectErr != nil {
		if errors.Is(m.reflectErr, service.ErrNotEnoughLogs) {
			b.WriteString(m.styles.StreakLabel.Render(
				fmt.Sprintf("Log at least %d actions this month to unlock a reflection.", stats.MinReflectionLogs)))
		} else {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.reflectErr)))
		}
		b.WriteString("\n")
	} else if m.reflection != "" {
		b.WriteString(m.styles.ViewTitle.Render("Reflection for " + m.reflectionFor))
		b.WriteString("\n")
		b.WriteString(m.styles.LogReflection.Render(m.reflection))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.StreakLabel.Render("Press m for this month's reflection letter."))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return b.String()
}

// renderResetDialog renders the reset confirmation dialog
func (m ProfileModel) renderResetDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Start fresh?"))
	b.WriteString("\n")
	b.WriteString(m.styles.LogReflection.Render(m.resetQuote))
	b.WriteString("\n\n")
	b.WriteString("This erases your entire history. A snapshot is kept; 'nzd restore' can undo it.\n\n")
	b.WriteString(m.styles.StatusHelp.Render("y/enter erase · esc cancel"))
	return m.styles.Dialog.Render(b.String())
}

// SetSize sets the view dimensions
func (m *ProfileModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsConfirming reports whether the reset dialog is capturing keys
func (m ProfileModel) IsConfirming() bool {
	return m.mode == profileModeConfirmReset
}

// loadProfile creates a command to load the grid and balance data
func (m ProfileModel) loadProfile() tea.Cmd {
	return func() tea.Msg {
		return profileLoadedMsg{
			history: m.services.Log.History(service.DefaultGridDays),
			balance: m.services.Stats.Balance(),
		}
	}
}

// loadReflection creates a command to fetch the monthly reflection
func (m ProfileModel) loadReflection() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reflectFetchTimeout)
		defer cancel()
		result, err := m.services.Motivation.Reflect(ctx)
		return reflectionLoadedMsg{result: result, err: err}
	}
}

// doReset erases the history behind a snapshot
func (m ProfileModel) doReset() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: m.services.Log.Reset()}
	}
}
