package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/motivation"
	"github.com/nonzeroday/nzd/internal/service"
	"github.com/nonzeroday/nzd/internal/tui/ui"
)

// todayMode represents the current mode of the today view
type todayMode int

const (
	todayModeNormal todayMode = iota
	todayModeForm
)

// Form field order in the log form
const (
	fieldNote = iota
	fieldCategory
	fieldEffort
	fieldMoodBefore
	fieldMoodAfter
	fieldReflection
	fieldCount
)

// sparkFetchTimeout bounds the spark round trip inside the TUI
const sparkFetchTimeout = 20 * time.Second

// TodayModel is the model for the today view
type TodayModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	status *service.StatusResult
	err    error

	// Spark state. sparkSeq numbers each request; a result arriving with an
	// older number is stale and dropped.
	spark        *motivation.SparkResult
	sparkSeq     int
	sparkLoading bool

	// Form state
	mode            todayMode
	noteInput       textinput.Model
	reflectionInput textinput.Model
	focusedField    int
	categoryIdx     int
	effortIdx       int
	moodBefore      int
	moodAfter       int
	formErr         error
}

// NewTodayModel creates a new today view model
func NewTodayModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TodayModel {
	noteInput := textinput.New()
	noteInput.Placeholder = "What did you do?"
	noteInput.CharLimit = 200
	noteInput.Width = 50

	reflectionInput := textinput.New()
	reflectionInput.Placeholder = "Optional reflection..."
	reflectionInput.CharLimit = daylog.MaxReflectionLen
	reflectionInput.Width = 50

	return TodayModel{
		services:        services,
		styles:          styles,
		keys:            keys,
		noteInput:       noteInput,
		reflectionInput: reflectionInput,
		effortIdx:       1, // medium
		moodBefore:      3,
		moodAfter:       3,
		sparkLoading:    !services.Config.Get().DisableSpark,
	}
}

// statusLoadedMsg is sent when the today state is loaded
type statusLoadedMsg struct {
	status service.StatusResult
}

// sparkLoadedMsg carries one spark result tagged with its request number
type sparkLoadedMsg struct {
	seq    int
	result motivation.SparkResult
}

// logSavedMsg is sent when a log save attempt finishes
type logSavedMsg struct {
	err error
}

// Init implements tea.Model
func (m TodayModel) Init() tea.Cmd {
	if m.services.Config.Get().DisableSpark {
		return m.loadStatus()
	}
	return tea.Batch(m.loadStatus(), m.sparkCmd(m.sparkSeq))
}

// Update implements tea.Model
func (m TodayModel) Update(msg tea.Msg) (TodayModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == todayModeForm {
			return m.handleFormKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.NewLog):
			m.mode = todayModeForm
			m.formErr = nil
			m.noteInput.SetValue("")
			m.reflectionInput.SetValue("")
			m.categoryIdx = 0
			m.effortIdx = 1
			m.moodBefore = 3
			m.moodAfter = 3
			m.focusedField = fieldNote
			m.noteInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Spark):
			return m.fetchSpark()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStatus()
		}

	case statusLoadedMsg:
		m.status = &msg.status

	case sparkLoadedMsg:
		if msg.seq != m.sparkSeq {
			return m, nil
		}
		m.sparkLoading = false
		m.spark = &msg.result

	case logSavedMsg:
		if msg.err != nil {
			m.formErr = msg.err
			return m, nil
		}
		m.mode = todayModeNormal
		m.noteInput.Blur()
		m.reflectionInput.Blur()
		return m, func() tea.Msg { return ui.LogCreatedMsg{} }

	case ui.LogCreatedMsg, ui.HistoryResetMsg:
		return m, m.loadStatus()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == todayModeForm {
		switch m.focusedField {
		case fieldNote:
			m.noteInput, cmd = m.noteInput.Update(msg)
		case fieldReflection:
			m.reflectionInput, cmd = m.reflectionInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// handleFormKeys handles key events while the log form is open
func (m TodayModel) handleFormKeys(msg tea.KeyMsg) (TodayModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		return m.submitForm()

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = todayModeNormal
		m.noteInput.Blur()
		m.reflectionInput.Blur()
		return m, nil

	case msg.String() == "tab":
		return m.focusField((m.focusedField + 1) % fieldCount), nil

	case msg.String() == "shift+tab":
		return m.focusField((m.focusedField - 1 + fieldCount) % fieldCount), nil
	}

	// Selector fields cycle with up/down; text fields get the raw key
	switch m.focusedField {
	case fieldCategory:
		if key.Matches(msg, m.keys.Down) {
			m.categoryIdx = (m.categoryIdx + 1) % len(daylog.Categories)
		} else if key.Matches(msg, m.keys.Up) {
			m.categoryIdx = (m.categoryIdx - 1 + len(daylog.Categories)) % len(daylog.Categories)
		}
		return m, nil
	case fieldEffort:
		if key.Matches(msg, m.keys.Down) {
			m.effortIdx = (m.effortIdx + 1) % len(daylog.Efforts)
		} else if key.Matches(msg, m.keys.Up) {
			m.effortIdx = (m.effortIdx - 1 + len(daylog.Efforts)) % len(daylog.Efforts)
		}
		return m, nil
	case fieldMoodBefore:
		m.moodBefore = cycleMood(m.moodBefore, msg, m.keys)
		return m, nil
	case fieldMoodAfter:
		m.moodAfter = cycleMood(m.moodAfter, msg, m.keys)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusedField {
	case fieldNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
	case fieldReflection:
		m.reflectionInput, cmd = m.reflectionInput.Update(msg)
	}
	return m, cmd
}

// focusField moves form focus, blurring and focusing text inputs as needed
func (m TodayModel) focusField(field int) TodayModel {
	m.focusedField = field
	m.noteInput.Blur()
	m.reflectionInput.Blur()
	switch field {
	case fieldNote:
		m.noteInput.Focus()
	case fieldReflection:
		m.reflectionInput.Focus()
	}
	return m
}

// submitForm validates and saves the log form
func (m TodayModel) submitForm() (TodayModel, tea.Cmd) {
	note := strings.TrimSpace(m.noteInput.Value())
	if note == "" {
		m.formErr = daylog.ErrEmptyNote
		return m, nil
	}

	params := service.CreateParams{
		Note:       note,
		Category:   string(daylog.Categories[m.categoryIdx]),
		Effort:     string(daylog.Efforts[m.effortIdx]),
		MoodBefore: m.moodBefore,
		MoodAfter:  m.moodAfter,
		Reflection: strings.TrimSpace(m.reflectionInput.Value()),
	}

	return m, func() tea.Msg {
		_, _, err := m.services.Log.Create(params)
		return logSavedMsg{err: err}
	}
}

// View implements tea.Model
func (m TodayModel) View() string {
	if m.mode == todayModeForm {
		return m.renderForm()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Today"))
	b.WriteString("\n\n")

	if m.status == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.status.Warning != nil {
		b.WriteString(m.styles.Warning.Render("History file was unreadable; starting from an empty history."))
		b.WriteString("\n\n")
	}

	// Streak
	streak := m.status.Summary.Streak
	b.WriteString(m.styles.StreakNumber.Render(fmt.Sprintf("%d", streak)))
	b.WriteString(" ")
	b.WriteString(m.styles.StreakLabel.Render(pluralize("day", streak) + " streak"))
	b.WriteString("   ")
	if m.status.Summary.IsDoneToday {
		b.WriteString(m.styles.DoneBadge.Render("✓ non-zero today"))
	} else {
		b.WriteString(m.styles.TodoBadge.Render("nothing logged yet"))
	}
	b.WriteString("\n\n")

	// Today's logs
	if len(m.status.TodayLogs) > 0 {
		b.WriteString(RenderLogList(m.status.TodayLogs, m.styles, LogRenderOptions{Width: m.width}))
	} else {
		b.WriteString(m.styles.StreakLabel.Render("One small action keeps the day non-zero. Press l to log one."))
		b.WriteString("\n")
	}

	// Spark card
	if m.sparkLoading {
		b.WriteString(m.styles.SparkCard.Render("Fetching a spark..."))
		b.WriteString("\n")
	} else if m.spark != nil {
		var inner string
		if m.spark.Type == motivation.SparkTask {
			inner = m.styles.SparkTask.Render("Try this: " + m.spark.Text)
		} else {
			inner = m.styles.SparkQuote.Render(m.spark.Text)
		}
		b.WriteString(m.styles.SparkCard.Render(inner))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return b.String()
}

// renderForm renders the log entry form
func (m TodayModel) renderForm() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Log an action"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTextField("Note", m.noteInput.View(), fieldNote))
	b.WriteString(m.renderSelectorField("Category", string(daylog.Categories[m.categoryIdx]), fieldCategory))
	b.WriteString(m.renderSelectorField("Effort", string(daylog.Efforts[m.effortIdx]), fieldEffort))
	b.WriteString(m.renderSelectorField("Mood before", moodDots(m.moodBefore), fieldMoodBefore))
	b.WriteString(m.renderSelectorField("Mood after", moodDots(m.moodAfter), fieldMoodAfter))
	b.WriteString(m.renderTextField("Reflection", m.reflectionInput.View(), fieldReflection))

	if m.formErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.formErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("tab next field · ↑/↓ change value · enter save · esc cancel"))

	return b.String()
}

func (m TodayModel) renderTextField(label, input string, field int) string {
	style := m.styles.Input
	if m.focusedField == field {
		style = m.styles.InputFocused
	}
	return m.styles.StatLabel.Render(label) + "\n" + style.Render(input) + "\n"
}

func (m TodayModel) renderSelectorField(label, value string, field int) string {
	marker := "  "
	style := m.styles.StatValue
	if m.focusedField == field {
		marker = "> "
		style = m.styles.StatValue.Underline(true)
	}
	return m.styles.StatLabel.Render(label) + " " + marker + style.Render(value) + "\n"
}

// SetSize sets the view dimensions
func (m *TodayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the log form is capturing keys
func (m TodayModel) IsInputMode() bool {
	return m.mode == todayModeForm
}

// loadStatus creates a command to load the today state
func (m TodayModel) loadStatus() tea.Cmd {
	return func() tea.Msg {
		return statusLoadedMsg{status: m.services.Log.Status()}
	}
}

// fetchSpark starts a new spark request under the next sequence number.
// Earlier in-flight requests keep running but their results are discarded.
func (m TodayModel) fetchSpark() (TodayModel, tea.Cmd) {
	if m.services.Config.Get().DisableSpark {
		return m, nil
	}

	m.sparkSeq++
	m.sparkLoading = true
	return m, m.sparkCmd(m.sparkSeq)
}

// sparkCmd runs one spark round trip tagged with seq
func (m TodayModel) sparkCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sparkFetchTimeout)
		defer cancel()
		return sparkLoadedMsg{seq: seq, result: m.services.Motivation.Spark(ctx)}
	}
}

// cycleMood adjusts a 1-5 mood value with the up/down keys
func cycleMood(mood int, msg tea.KeyMsg, keys ui.KeyMap) int {
	if key.Matches(msg, keys.Up) && mood < 5 {
		return mood + 1
	}
	if key.Matches(msg, keys.Down) && mood > 1 {
		return mood - 1
	}
	return mood
}

// moodDots renders a 1-5 mood as filled and empty dots
func moodDots(mood int) string {
	return strings.Repeat("●", mood) + strings.Repeat("○", 5-mood)
}
