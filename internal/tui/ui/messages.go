package ui

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// LogCreatedMsg is broadcast after a new log is saved so other views can
// refresh their derived state.
type LogCreatedMsg struct{}

// HistoryResetMsg is broadcast after the history is erased or restored.
type HistoryResetMsg struct{}
