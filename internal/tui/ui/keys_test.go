package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"quit q", keys.Quit, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"quit ctrl+c", keys.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"up arrow", keys.Up, tea.KeyMsg{Type: tea.KeyUp}},
		{"up k", keys.Up, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}},
		{"down j", keys.Down, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}},
		{"next tab", keys.NextTab, tea.KeyMsg{Type: tea.KeyTab}},
		{"prev tab", keys.PrevTab, tea.KeyMsg{Type: tea.KeyShiftTab}},
		{"tab 1", keys.Tab1, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}},
		{"tab 2", keys.Tab2, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}},
		{"select", keys.Select, tea.KeyMsg{Type: tea.KeyEnter}},
		{"back", keys.Back, tea.KeyMsg{Type: tea.KeyEsc}},
		{"help", keys.Help, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}},
		{"new log", keys.NewLog, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}},
		{"spark", keys.Spark, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}},
		{"reflect", keys.Reflect, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}},
		{"reset", keys.Reset, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}},
		{"theme", keys.Theme, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected %v to match binding", tt.msg)
			}
		})
	}
}

func TestDefaultKeyMap_NoOverlap(t *testing.T) {
	keys := DefaultKeyMap()

	// 'x' must only trigger reset, never quit
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if key.Matches(msg, keys.Quit) {
		t.Error("x should not match quit")
	}

	// 'l' must only trigger the log form
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}
	if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Reset) {
		t.Error("l should only match the log form binding")
	}
}
