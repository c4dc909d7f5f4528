package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Streak display
	StreakNumber lipgloss.Style
	StreakLabel  lipgloss.Style
	DoneBadge    lipgloss.Style
	TodoBadge    lipgloss.Style

	// Day grid
	GridLogged lipgloss.Style
	GridEmpty  lipgloss.Style

	// Log list
	LogTime       lipgloss.Style
	LogNote       lipgloss.Style
	LogCategory   lipgloss.Style
	LogReflection lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Bar       lipgloss.Style

	// Spark card
	SparkCard  lipgloss.Style
	SparkQuote lipgloss.Style
	SparkTask  lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint
// registry. Theme colors map to semantic elements:
// - Primary: Purple (tabs, titles, streak)
// - Secondary: Cyan (times, categories, keys)
// - Accent: BrightPurple (spark card, bars)
// - Muted: BrightBlack (inactive elements, labels, empty grid cells)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Streak display
		StreakNumber: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		StreakLabel: lipgloss.NewStyle().
			Foreground(muted),
		DoneBadge: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TodoBadge: lipgloss.NewStyle().
			Foreground(warning),

		// Day grid
		GridLogged: lipgloss.NewStyle().
			Foreground(success),
		GridEmpty: lipgloss.NewStyle().
			Foreground(muted),

		// Log list
		LogTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(12),
		LogNote: lipgloss.NewStyle().
			Foreground(fg),
		LogCategory: lipgloss.NewStyle().
			Foreground(primary),
		LogReflection: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		// Stats
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Bar: lipgloss.NewStyle().
			Foreground(accent),

		// Spark card
		SparkCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			MarginTop(1),
		SparkQuote: lipgloss.NewStyle().
			Foreground(fg).
			Italic(true),
		SparkTask: lipgloss.NewStyle().
			Foreground(success),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
