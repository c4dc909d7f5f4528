package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStylesFromProvider(t *testing.T) {
	styles := NewThemeProvider("").Styles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"Content", styles.Content},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"StreakNumber", styles.StreakNumber},
		{"StreakLabel", styles.StreakLabel},
		{"DoneBadge", styles.DoneBadge},
		{"TodoBadge", styles.TodoBadge},
		{"GridLogged", styles.GridLogged},
		{"GridEmpty", styles.GridEmpty},
		{"LogTime", styles.LogTime},
		{"LogNote", styles.LogNote},
		{"LogCategory", styles.LogCategory},
		{"LogReflection", styles.LogReflection},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"Bar", styles.Bar},
		{"SparkCard", styles.SparkCard},
		{"SparkQuote", styles.SparkQuote},
		{"SparkTask", styles.SparkTask},
		{"Input", styles.Input},
		{"InputFocused", styles.InputFocused},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rendered := tt.style.Render("test"); rendered == "" {
				t.Errorf("expected non-empty rendered output for style %s", tt.name)
			}
		})
	}
}

func TestStyles_Attributes(t *testing.T) {
	styles := NewThemeProvider("").Styles()

	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to be bold")
	}
	if !styles.StreakNumber.GetBold() {
		t.Error("expected streak number to be bold")
	}
	if !styles.LogReflection.GetItalic() {
		t.Error("expected reflection to be italic")
	}
}

func TestStyles_DialogPreservesContent(t *testing.T) {
	styles := NewThemeProvider("").Styles()

	if out := styles.Dialog.Render("hello"); !strings.Contains(out, "hello") {
		t.Errorf("expected content preserved, got %q", out)
	}
}
